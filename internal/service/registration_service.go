package service

import (
	"context"
	"fmt"
	"io"

	"github.com/PlanetSoftweb/sppl/internal/event"
	"github.com/PlanetSoftweb/sppl/internal/middleware"
	"github.com/PlanetSoftweb/sppl/internal/store"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// PhotoUploader publishes an image and returns its public URL.
type PhotoUploader interface {
	Upload(ctx context.Context, filename string, image io.Reader) (string, error)
}

// RegistrationService covers the shareable-link player self-registration
// flow: a link is a capability token, anyone holding an active one may submit
// a PENDING player for the target team.
type RegistrationService struct {
	db          *sqlx.DB
	store       *store.TeamStore
	hostelStore *store.HostelStore
	photos      PhotoUploader
}

func NewRegistrationService(db *sqlx.DB, store *store.TeamStore, hostelStore *store.HostelStore, photos PhotoUploader) *RegistrationService {
	return &RegistrationService{db: db, store: store, hostelStore: hostelStore, photos: photos}
}

func (s *RegistrationService) GenerateLink(ctx context.Context, teamID string) (*event.RegistrationLink, error) {
	ownerID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("user ID not found in the context")
	}

	team, err := s.store.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	link := &event.RegistrationLink{
		ID:      uuid.New(),
		TeamID:  team.ID,
		OwnerID: ownerID,
		Sport:   team.Sport,
		Active:  true,
	}
	if err := s.store.CreateRegistrationLink(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

func (s *RegistrationService) DeactivateLink(ctx context.Context, linkID string) error {
	if _, err := s.store.GetRegistrationLink(ctx, linkID); err != nil {
		return err
	}
	return s.store.SetRegistrationLinkActive(ctx, linkID, false)
}

type OpenRegistration struct {
	Link   *event.RegistrationLink
	Team   *event.Team
	Hostel *event.Hostel
}

// ResolveLink validates a visited registration URL. sql.ErrNoRows means the
// link never existed; ErrLinkInactive means it was turned off.
func (s *RegistrationService) ResolveLink(ctx context.Context, linkID string) (*OpenRegistration, error) {
	link, err := s.store.GetRegistrationLink(ctx, linkID)
	if err != nil {
		return nil, err
	}
	if !link.Active {
		return nil, ErrLinkInactive
	}

	team, err := s.store.GetTeam(ctx, link.TeamID.String())
	if err != nil {
		return nil, err
	}
	hostel, err := s.hostelStore.GetHostel(ctx, team.HostelID.String())
	if err != nil {
		return nil, err
	}

	return &OpenRegistration{Link: link, Team: team, Hostel: hostel}, nil
}

// Submit records an unauthenticated visitor's registration as a PENDING
// player for the link's team. Capacity is only enforced at approval time.
// The photo is uploaded only after the form and link state validate, so a
// closed link or bad input never publishes an image.
func (s *RegistrationService) Submit(ctx context.Context, linkID string, input PlayerInput, photo io.Reader, filename string) (*event.Player, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	reg, err := s.ResolveLink(ctx, linkID)
	if err != nil {
		return nil, err
	}

	var photoURL *string
	if photo != nil {
		if s.photos == nil {
			return nil, fmt.Errorf("image hosting is not configured")
		}
		url, err := s.photos.Upload(ctx, filename, photo)
		if err != nil {
			return nil, fmt.Errorf("failed to upload photo: %w", err)
		}
		photoURL = &url
	}

	player := &event.Player{
		ID:           uuid.New(),
		TeamID:       reg.Team.ID,
		Name:         input.Name,
		Position:     input.Position,
		JerseyNumber: input.JerseyNumber,
		MobileNumber: input.MobileNumber,
		TshirtSize:   event.TshirtSize(input.TshirtSize),
		PhotoURL:     photoURL,
		Status:       event.PlayerPending,
	}
	if err := s.store.CreatePlayer(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

func (s *RegistrationService) PendingRequests(ctx context.Context, teamID string) ([]event.Player, error) {
	return s.store.GetPlayersByTeamAndStatus(ctx, teamID, event.PlayerPending)
}

// Approve moves a PENDING request to APPROVED. The capacity check and the
// status flip run in one transaction so two concurrent approvals cannot
// overfill the roster.
func (s *RegistrationService) Approve(ctx context.Context, playerID string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	player, err := s.store.GetPlayerTx(ctx, tx, playerID)
	if err != nil {
		return err
	}
	if player.Status != event.PlayerPending {
		return ErrRequestNotOpen
	}

	team, err := s.store.GetTeamTx(ctx, tx, player.TeamID.String())
	if err != nil {
		return err
	}

	count, err := s.store.CountApprovedPlayersTx(ctx, tx, team.ID.String())
	if err != nil {
		return err
	}
	if count >= team.MaxPlayers {
		return ErrRosterFull
	}

	if err := s.store.UpdatePlayerStatusTx(ctx, tx, playerID, event.PlayerApproved); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *RegistrationService) Reject(ctx context.Context, playerID string) error {
	player, err := s.store.GetPlayer(ctx, playerID)
	if err != nil {
		return err
	}
	if player.Status != event.PlayerPending {
		return ErrRequestNotOpen
	}
	return s.store.UpdatePlayerStatus(ctx, playerID, event.PlayerRejected)
}
