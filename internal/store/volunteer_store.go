package store

import (
	"context"

	"github.com/PlanetSoftweb/sppl/internal/event"
	"github.com/jmoiron/sqlx"
)

type VolunteerStore struct {
	db *sqlx.DB
}

func NewVolunteerStore(db *sqlx.DB) *VolunteerStore {
	return &VolunteerStore{db: db}
}

func (s *VolunteerStore) CreateVolunteer(ctx context.Context, volunteer *event.Volunteer) error {
	_, err := s.db.NamedExecContext(ctx, `INSERT INTO volunteers (id, owner_id, name, role, contact_number, email, assigned_sport)
		VALUES (:id, :owner_id, :name, :role, :contact_number, :email, :assigned_sport)`, volunteer)
	return err
}

func (s *VolunteerStore) GetVolunteer(ctx context.Context, id string) (*event.Volunteer, error) {
	var volunteer event.Volunteer
	err := s.db.GetContext(ctx, &volunteer, "SELECT * FROM volunteers WHERE id = ?", id)
	return &volunteer, err
}

func (s *VolunteerStore) GetVolunteersByOwner(ctx context.Context, ownerID string) ([]event.Volunteer, error) {
	var volunteers []event.Volunteer
	err := s.db.SelectContext(ctx, &volunteers, "SELECT * FROM volunteers WHERE owner_id = ? ORDER BY created_at ASC", ownerID)
	return volunteers, err
}

func (s *VolunteerStore) UpdateVolunteer(ctx context.Context, volunteer *event.Volunteer) error {
	_, err := s.db.NamedExecContext(ctx, `UPDATE volunteers SET
		name = :name,
		role = :role,
		contact_number = :contact_number,
		email = :email,
		assigned_sport = :assigned_sport
		WHERE id = :id`, volunteer)
	return err
}

func (s *VolunteerStore) DeleteVolunteer(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM volunteers WHERE id = ?", id)
	return err
}
