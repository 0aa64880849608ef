package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PlanetSoftweb/sppl/internal/event"
	"github.com/PlanetSoftweb/sppl/internal/middleware"
	"github.com/PlanetSoftweb/sppl/internal/store"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type MatchService struct {
	db          *sqlx.DB
	store       *store.MatchStore
	teamStore   *store.TeamStore
	hostelStore *store.HostelStore
}

func NewMatchService(db *sqlx.DB, store *store.MatchStore, teamStore *store.TeamStore, hostelStore *store.HostelStore) *MatchService {
	return &MatchService{db: db, store: store, teamStore: teamStore, hostelStore: hostelStore}
}

type MatchInput struct {
	Sport       string `json:"sport"`
	Team1ID     string `json:"team1Id"`
	Team2ID     string `json:"team2Id"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Venue       string `json:"venue"`
	Round       *int   `json:"round,omitempty"`
	MatchNumber *int   `json:"matchNumber,omitempty"`
}

func (s *MatchService) CreateMatch(ctx context.Context, input MatchInput) (*event.Match, error) {
	ownerID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("user ID not found in the context")
	}

	if !event.ValidSport(input.Sport) {
		return nil, validationf("invalid sport")
	}
	if input.Team1ID == input.Team2ID {
		return nil, validationf("a team cannot play against itself")
	}
	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		return nil, validationf("date must be in YYYY-MM-DD format")
	}
	for _, clock := range []string{input.StartTime, input.EndTime} {
		if _, err := time.Parse("15:04", clock); err != nil {
			return nil, validationf("times must be in HH:MM format")
		}
	}
	if strings.TrimSpace(input.Venue) == "" {
		return nil, validationf("venue is required")
	}

	team1, name1, err := s.resolveTeam(ctx, input.Team1ID, event.Sport(input.Sport))
	if err != nil {
		return nil, err
	}
	team2, name2, err := s.resolveTeam(ctx, input.Team2ID, event.Sport(input.Sport))
	if err != nil {
		return nil, err
	}

	match := &event.Match{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Sport:       event.Sport(input.Sport),
		Team1ID:     team1.ID,
		Team2ID:     team2.ID,
		Team1Name:   name1,
		Team2Name:   name2,
		Date:        input.Date,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Venue:       strings.TrimSpace(input.Venue),
		Status:      event.MatchScheduled,
		Round:       input.Round,
		MatchNumber: input.MatchNumber,
	}
	if err := s.store.CreateMatch(ctx, match); err != nil {
		return nil, err
	}
	return match, nil
}

// resolveTeam checks the team plays the match's sport and derives its display
// name from the owning hostel.
func (s *MatchService) resolveTeam(ctx context.Context, teamID string, sport event.Sport) (*event.Team, string, error) {
	team, err := s.teamStore.GetTeam(ctx, teamID)
	if err != nil {
		return nil, "", err
	}
	if team.Sport != sport {
		return nil, "", validationf("team does not play %s", sport)
	}
	hostel, err := s.hostelStore.GetHostel(ctx, team.HostelID.String())
	if err != nil {
		return nil, "", err
	}
	return team, hostel.Name, nil
}

func (s *MatchService) GetMatches(ctx context.Context, filter store.MatchFilter) ([]event.Match, error) {
	return s.store.GetMatches(ctx, filter)
}

// CompleteMatch records the result: match becomes completed with the winner's
// display name, and both teams' counters move in the same transaction.
func (s *MatchService) CompleteMatch(ctx context.Context, matchID string, winner string) (*event.Match, error) {
	match, err := s.store.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match.Status != event.MatchScheduled {
		return nil, ErrMatchNotOpen
	}

	var winnerTeamID uuid.UUID
	switch winner {
	case match.Team1Name:
		winnerTeamID = match.Team1ID
	case match.Team2Name:
		winnerTeamID = match.Team2ID
	default:
		return nil, ErrWinnerNotInMatch
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := s.store.UpdateMatchResultTx(ctx, tx, matchID, event.MatchCompleted, &winner); err != nil {
		return nil, fmt.Errorf("failed to update match: %w", err)
	}
	if err := s.teamStore.RecordResultTx(ctx, tx, match.Team1ID.String(), match.Team1ID == winnerTeamID); err != nil {
		return nil, fmt.Errorf("failed to update team counters: %w", err)
	}
	if err := s.teamStore.RecordResultTx(ctx, tx, match.Team2ID.String(), match.Team2ID == winnerTeamID); err != nil {
		return nil, fmt.Errorf("failed to update team counters: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	match.Status = event.MatchCompleted
	match.Winner = &winner
	return match, nil
}

func (s *MatchService) CancelMatch(ctx context.Context, matchID string) (*event.Match, error) {
	match, err := s.store.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match.Status != event.MatchScheduled {
		return nil, ErrMatchNotOpen
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := s.store.UpdateMatchResultTx(ctx, tx, matchID, event.MatchCancelled, nil); err != nil {
		return nil, fmt.Errorf("failed to cancel match: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	match.Status = event.MatchCancelled
	match.Winner = nil
	return match, nil
}
