package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/PlanetSoftweb/sppl/internal/event"
	"github.com/PlanetSoftweb/sppl/internal/middleware"
	"github.com/PlanetSoftweb/sppl/internal/store"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type TeamService struct {
	db          *sqlx.DB
	store       *store.TeamStore
	hostelStore *store.HostelStore
}

func NewTeamService(db *sqlx.DB, store *store.TeamStore, hostelStore *store.HostelStore) *TeamService {
	return &TeamService{db: db, store: store, hostelStore: hostelStore}
}

func (s *TeamService) CreateTeam(ctx context.Context, hostelID string, sport event.Sport, maxPlayers int) (*event.Team, error) {
	ownerID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("user ID not found in the context")
	}

	hostel, err := s.hostelStore.GetHostel(ctx, hostelID)
	if err != nil {
		return nil, err
	}
	if !hostel.SportEnabled(sport) {
		return nil, ErrSportDisabled
	}
	if maxPlayers < 1 {
		return nil, validationf("max players must be at least 1")
	}

	existing, err := s.store.GetTeamsByHostel(ctx, hostelID)
	if err != nil {
		return nil, err
	}
	for _, t := range existing {
		if t.Sport == sport {
			return nil, ErrTeamExists
		}
	}

	team := &event.Team{
		ID:         uuid.New(),
		HostelID:   hostel.ID,
		OwnerID:    ownerID,
		Sport:      sport,
		MaxPlayers: maxPlayers,
	}
	if err := s.store.CreateTeam(ctx, team); err != nil {
		return nil, err
	}
	return team, nil
}

type TeamWithRoster struct {
	Team    event.Team     `json:"team"`
	Players []event.Player `json:"players"`
	Pending int            `json:"pendingRequests"`
}

func (s *TeamService) GetTeamsWithRosters(ctx context.Context, hostelID string) ([]TeamWithRoster, error) {
	teams, err := s.store.GetTeamsByHostel(ctx, hostelID)
	if err != nil {
		return nil, err
	}

	result := make([]TeamWithRoster, 0, len(teams))
	for _, team := range teams {
		players, err := s.store.GetPlayersByTeamAndStatus(ctx, team.ID.String(), event.PlayerApproved)
		if err != nil {
			return nil, err
		}
		pending, err := s.store.GetPlayersByTeamAndStatus(ctx, team.ID.String(), event.PlayerPending)
		if err != nil {
			return nil, err
		}
		result = append(result, TeamWithRoster{Team: team, Players: players, Pending: len(pending)})
	}
	return result, nil
}

type PlayerInput struct {
	Name         string `json:"name"`
	Position     string `json:"position"`
	JerseyNumber int    `json:"jerseyNumber"`
	MobileNumber string `json:"mobileNumber"`
	TshirtSize   string `json:"tshirtSize"`
}

func (in *PlayerInput) validate() error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return validationf("player name is required")
	}
	if strings.TrimSpace(in.Position) == "" {
		return validationf("position is required")
	}
	if in.JerseyNumber < 0 {
		return validationf("jersey number cannot be negative")
	}
	if !event.ValidMobileNumber(in.MobileNumber) {
		return validationf("mobile number must be exactly 10 digits")
	}
	if !event.ValidTshirtSize(in.TshirtSize) {
		return validationf("invalid t-shirt size")
	}
	return nil
}

// AddPlayer is the manager path: the player joins the roster immediately.
func (s *TeamService) AddPlayer(ctx context.Context, teamID string, input PlayerInput) (*event.Player, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	team, err := s.store.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	count, err := s.store.CountApprovedPlayers(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if count >= team.MaxPlayers {
		return nil, ErrRosterFull
	}

	player := &event.Player{
		ID:           uuid.New(),
		TeamID:       team.ID,
		Name:         input.Name,
		Position:     input.Position,
		JerseyNumber: input.JerseyNumber,
		MobileNumber: input.MobileNumber,
		TshirtSize:   event.TshirtSize(input.TshirtSize),
		Status:       event.PlayerApproved,
	}
	if err := s.store.CreatePlayer(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

func (s *TeamService) UpdatePlayer(ctx context.Context, playerID string, input PlayerInput) (*event.Player, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	player, err := s.store.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	player.Name = input.Name
	player.Position = input.Position
	player.JerseyNumber = input.JerseyNumber
	player.MobileNumber = input.MobileNumber
	player.TshirtSize = event.TshirtSize(input.TshirtSize)

	if err := s.store.UpdatePlayer(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

func (s *TeamService) DeletePlayer(ctx context.Context, playerID string) error {
	if _, err := s.store.GetPlayer(ctx, playerID); err != nil {
		return err
	}
	return s.store.DeletePlayer(ctx, playerID)
}

func (s *TeamService) SetPlayerPhoto(ctx context.Context, playerID string, photoURL string) error {
	if _, err := s.store.GetPlayer(ctx, playerID); err != nil {
		return err
	}
	return s.store.UpdatePlayerPhoto(ctx, playerID, photoURL)
}

// RequireManager verifies that the session may manage a hostel's teams: the
// caller either owns the hostel or has unlocked its dashboard gate.
func (s *TeamService) RequireManager(ctx context.Context, hostelID string, unlocked bool) (*event.Hostel, error) {
	hostel, err := s.hostelStore.GetHostel(ctx, hostelID)
	if err != nil {
		return nil, err
	}
	if unlocked {
		return hostel, nil
	}
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok || hostel.OwnerID != userID {
		return nil, ErrNotOwner
	}
	return hostel, nil
}
