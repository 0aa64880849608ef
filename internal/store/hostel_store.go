package store

import (
	"context"

	"github.com/PlanetSoftweb/sppl/internal/event"
	"github.com/jmoiron/sqlx"
)

type HostelStore struct {
	db *sqlx.DB
}

func NewHostelStore(db *sqlx.DB) *HostelStore {
	return &HostelStore{db: db}
}

func (s *HostelStore) CreateHostel(ctx context.Context, hostel *event.Hostel) error {
	_, err := s.db.NamedExecContext(ctx, `INSERT INTO hostels (id, owner_id, name, total_students, secret_hash, cricket_enabled, volleyball_enabled, kabaddi_enabled)
		VALUES (:id, :owner_id, :name, :total_students, :secret_hash, :cricket_enabled, :volleyball_enabled, :kabaddi_enabled)`, hostel)
	return err
}

func (s *HostelStore) GetHostel(ctx context.Context, id string) (*event.Hostel, error) {
	var hostel event.Hostel
	err := s.db.GetContext(ctx, &hostel, "SELECT * FROM hostels WHERE id = ?", id)
	return &hostel, err
}

func (s *HostelStore) GetHostels(ctx context.Context) ([]event.Hostel, error) {
	var hostels []event.Hostel
	err := s.db.SelectContext(ctx, &hostels, "SELECT * FROM hostels ORDER BY created_at DESC")
	return hostels, err
}
