package store

import (
	"context"

	"github.com/PlanetSoftweb/sppl/internal/event"
	"github.com/jmoiron/sqlx"
)

type TeamStore struct {
	db *sqlx.DB
}

func NewTeamStore(db *sqlx.DB) *TeamStore {
	return &TeamStore{db: db}
}

func (s *TeamStore) CreateTeam(ctx context.Context, team *event.Team) error {
	_, err := s.db.NamedExecContext(ctx, `INSERT INTO teams (id, hostel_id, owner_id, sport, max_players)
		VALUES (:id, :hostel_id, :owner_id, :sport, :max_players)`, team)
	return err
}

func (s *TeamStore) GetTeam(ctx context.Context, id string) (*event.Team, error) {
	var team event.Team
	err := s.db.GetContext(ctx, &team, "SELECT * FROM teams WHERE id = ?", id)
	return &team, err
}

func (s *TeamStore) GetTeamTx(ctx context.Context, tx *sqlx.Tx, id string) (*event.Team, error) {
	var team event.Team
	err := tx.GetContext(ctx, &team, "SELECT * FROM teams WHERE id = ?", id)
	return &team, err
}

func (s *TeamStore) GetTeamsByHostel(ctx context.Context, hostelID string) ([]event.Team, error) {
	var teams []event.Team
	err := s.db.SelectContext(ctx, &teams, "SELECT * FROM teams WHERE hostel_id = ? ORDER BY created_at ASC", hostelID)
	return teams, err
}

func (s *TeamStore) RecordResultTx(ctx context.Context, tx *sqlx.Tx, teamID string, won bool) error {
	query := "UPDATE teams SET matches_played = matches_played + 1 WHERE id = ?"
	if won {
		query = "UPDATE teams SET matches_played = matches_played + 1, wins = wins + 1 WHERE id = ?"
	}
	_, err := tx.ExecContext(ctx, query, teamID)
	return err
}

func (s *TeamStore) CreatePlayer(ctx context.Context, player *event.Player) error {
	_, err := s.db.NamedExecContext(ctx, `INSERT INTO players (id, team_id, name, position, jersey_number, mobile_number, tshirt_size, photo_url, status)
		VALUES (:id, :team_id, :name, :position, :jersey_number, :mobile_number, :tshirt_size, :photo_url, :status)`, player)
	return err
}

func (s *TeamStore) GetPlayer(ctx context.Context, id string) (*event.Player, error) {
	var player event.Player
	err := s.db.GetContext(ctx, &player, "SELECT * FROM players WHERE id = ?", id)
	return &player, err
}

func (s *TeamStore) GetPlayersByTeam(ctx context.Context, teamID string) ([]event.Player, error) {
	var players []event.Player
	err := s.db.SelectContext(ctx, &players, "SELECT * FROM players WHERE team_id = ? ORDER BY created_at ASC", teamID)
	return players, err
}

func (s *TeamStore) GetPlayersByTeamAndStatus(ctx context.Context, teamID string, status event.PlayerStatus) ([]event.Player, error) {
	var players []event.Player
	err := s.db.SelectContext(ctx, &players, "SELECT * FROM players WHERE team_id = ? AND status = ? ORDER BY created_at ASC", teamID, status)
	return players, err
}

func (s *TeamStore) CountApprovedPlayers(ctx context.Context, teamID string) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM players WHERE team_id = ? AND status = ?", teamID, event.PlayerApproved)
	return count, err
}

func (s *TeamStore) CountApprovedPlayersTx(ctx context.Context, tx *sqlx.Tx, teamID string) (int, error) {
	var count int
	err := tx.GetContext(ctx, &count, "SELECT COUNT(*) FROM players WHERE team_id = ? AND status = ?", teamID, event.PlayerApproved)
	return count, err
}

func (s *TeamStore) GetPlayerTx(ctx context.Context, tx *sqlx.Tx, id string) (*event.Player, error) {
	var player event.Player
	err := tx.GetContext(ctx, &player, "SELECT * FROM players WHERE id = ?", id)
	return &player, err
}

func (s *TeamStore) UpdatePlayerStatusTx(ctx context.Context, tx *sqlx.Tx, id string, status event.PlayerStatus) error {
	_, err := tx.ExecContext(ctx, "UPDATE players SET status = ? WHERE id = ?", status, id)
	return err
}

func (s *TeamStore) UpdatePlayer(ctx context.Context, player *event.Player) error {
	_, err := s.db.NamedExecContext(ctx, `UPDATE players SET
		name = :name,
		position = :position,
		jersey_number = :jersey_number,
		mobile_number = :mobile_number,
		tshirt_size = :tshirt_size,
		photo_url = :photo_url
		WHERE id = :id`, player)
	return err
}

func (s *TeamStore) UpdatePlayerStatus(ctx context.Context, id string, status event.PlayerStatus) error {
	_, err := s.db.ExecContext(ctx, "UPDATE players SET status = ? WHERE id = ?", status, id)
	return err
}

func (s *TeamStore) UpdatePlayerPhoto(ctx context.Context, id string, photoURL string) error {
	_, err := s.db.ExecContext(ctx, "UPDATE players SET photo_url = ? WHERE id = ?", photoURL, id)
	return err
}

func (s *TeamStore) DeletePlayer(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM players WHERE id = ?", id)
	return err
}

func (s *TeamStore) CreateRegistrationLink(ctx context.Context, link *event.RegistrationLink) error {
	_, err := s.db.NamedExecContext(ctx, `INSERT INTO registration_links (id, team_id, owner_id, sport, active)
		VALUES (:id, :team_id, :owner_id, :sport, :active)`, link)
	return err
}

func (s *TeamStore) GetRegistrationLink(ctx context.Context, id string) (*event.RegistrationLink, error) {
	var link event.RegistrationLink
	err := s.db.GetContext(ctx, &link, "SELECT * FROM registration_links WHERE id = ?", id)
	return &link, err
}

func (s *TeamStore) GetRegistrationLinksByTeam(ctx context.Context, teamID string) ([]event.RegistrationLink, error) {
	var links []event.RegistrationLink
	err := s.db.SelectContext(ctx, &links, "SELECT * FROM registration_links WHERE team_id = ? ORDER BY created_at DESC", teamID)
	return links, err
}

func (s *TeamStore) SetRegistrationLinkActive(ctx context.Context, id string, active bool) error {
	_, err := s.db.ExecContext(ctx, "UPDATE registration_links SET active = ? WHERE id = ?", active, id)
	return err
}
