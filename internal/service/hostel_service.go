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
	"golang.org/x/crypto/bcrypt"
)

type HostelService struct {
	db    *sqlx.DB
	store *store.HostelStore
}

func NewHostelService(db *sqlx.DB, store *store.HostelStore) *HostelService {
	return &HostelService{db: db, store: store}
}

type HostelInput struct {
	Name          string `json:"name"`
	TotalStudents int    `json:"totalStudents"`
	Secret        string `json:"password"`
	Cricket       bool   `json:"cricket"`
	Volleyball    bool   `json:"volleyball"`
	Kabaddi       bool   `json:"kabaddi"`
}

func (s *HostelService) CreateHostel(ctx context.Context, input HostelInput) (*event.Hostel, error) {
	ownerID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("user ID not found in the context")
	}

	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, validationf("hostel name is required")
	}
	if input.TotalStudents < 0 {
		return nil, validationf("total students cannot be negative")
	}
	if len(input.Secret) < 6 {
		return nil, validationf("dashboard password must be at least 6 characters")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Secret), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	hostel := &event.Hostel{
		ID:                uuid.New(),
		OwnerID:           ownerID,
		Name:              input.Name,
		TotalStudents:     input.TotalStudents,
		SecretHash:        string(hash),
		CricketEnabled:    input.Cricket,
		VolleyballEnabled: input.Volleyball,
		KabaddiEnabled:    input.Kabaddi,
	}
	if err := s.store.CreateHostel(ctx, hostel); err != nil {
		return nil, err
	}
	return hostel, nil
}

func (s *HostelService) GetHostels(ctx context.Context) ([]event.Hostel, error) {
	return s.store.GetHostels(ctx)
}

func (s *HostelService) GetHostel(ctx context.Context, id string) (*event.Hostel, error) {
	return s.store.GetHostel(ctx, id)
}

// CheckAccess is the per-hostel dashboard gate. It authorizes a view, not an
// identity: the caller records the unlocked state in the session on success.
func (s *HostelService) CheckAccess(ctx context.Context, hostelID string, secret string) (*event.Hostel, error) {
	hostel, err := s.store.GetHostel(ctx, hostelID)
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(hostel.SecretHash), []byte(secret)) != nil {
		return nil, ErrIncorrectPassword
	}
	return hostel, nil
}
