package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/PlanetSoftweb/sppl/internal/event"
	"github.com/jmoiron/sqlx"
)

type MatchStore struct {
	db *sqlx.DB
}

func NewMatchStore(db *sqlx.DB) *MatchStore {
	return &MatchStore{db: db}
}

func (s *MatchStore) CreateMatch(ctx context.Context, match *event.Match) error {
	_, err := s.db.NamedExecContext(ctx, `INSERT INTO matches (id, owner_id, sport, team_1_id, team_2_id, team_1_name, team_2_name, date, start_time, end_time, venue, status, winner, round, match_number)
		VALUES (:id, :owner_id, :sport, :team_1_id, :team_2_id, :team_1_name, :team_2_name, :date, :start_time, :end_time, :venue, :status, :winner, :round, :match_number)`, match)
	return err
}

func (s *MatchStore) GetMatch(ctx context.Context, id string) (*event.Match, error) {
	var match event.Match
	err := s.db.GetContext(ctx, &match, "SELECT * FROM matches WHERE id = ?", id)
	return &match, err
}

// MatchFilter narrows GetMatches; zero values mean "any".
type MatchFilter struct {
	Sport  event.Sport
	Status event.MatchStatus
}

func (s *MatchStore) GetMatches(ctx context.Context, filter MatchFilter) ([]event.Match, error) {
	builder := sq.Select("*").From("matches").
		OrderBy("date ASC", "start_time ASC")
	if filter.Sport != "" {
		builder = builder.Where(sq.Eq{"sport": filter.Sport})
	}
	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"status": filter.Status})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	var matches []event.Match
	err = s.db.SelectContext(ctx, &matches, query, args...)
	return matches, err
}

func (s *MatchStore) UpdateMatchResultTx(ctx context.Context, tx *sqlx.Tx, id string, status event.MatchStatus, winner *string) error {
	_, err := tx.ExecContext(ctx, "UPDATE matches SET status = ?, winner = ? WHERE id = ?", status, winner, id)
	return err
}
