package service

import (
	"context"
	"database/sql"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/PlanetSoftweb/sppl/internal/event"
	"github.com/PlanetSoftweb/sppl/internal/store"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUploader stands in for the image host and counts calls.
type fakeUploader struct {
	uploads int
	url     string
}

func (f *fakeUploader) Upload(ctx context.Context, filename string, image io.Reader) (string, error) {
	f.uploads++
	return f.url, nil
}

func seedTeam(t *testing.T, db *sqlx.DB, ctx context.Context, maxPlayers int) *event.Team {
	t.Helper()

	hostelService := NewHostelService(db, store.NewHostelStore(db))
	teamService := NewTeamService(db, store.NewTeamStore(db), store.NewHostelStore(db))

	hostel, err := hostelService.CreateHostel(ctx, HostelInput{
		Name: "Aryabhatta Hostel", TotalStudents: 180, Secret: "hostel-secret", Cricket: true,
	})
	require.NoError(t, err)

	team, err := teamService.CreateTeam(ctx, hostel.ID.String(), event.Cricket, maxPlayers)
	require.NoError(t, err)
	return team
}

func TestRegistrationFlow(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx, _ := seedUser(t, db, "organizer@sppl.test")
	team := seedTeam(t, db, ctx, 15)
	uploader := &fakeUploader{url: "https://i.ibb.co/anil.jpg"}
	regService := NewRegistrationService(db, store.NewTeamStore(db), store.NewHostelStore(db), uploader)

	link, err := regService.GenerateLink(ctx, team.ID.String())
	require.NoError(t, err)
	assert.True(t, link.Active)
	assert.Equal(t, event.Cricket, link.Sport)

	// The public page resolves the link without any authenticated user.
	reg, err := regService.ResolveLink(context.Background(), link.ID.String())
	require.NoError(t, err)
	assert.Equal(t, team.ID, reg.Team.ID)
	assert.Equal(t, "Aryabhatta Hostel", reg.Hostel.Name)

	player, err := regService.Submit(context.Background(), link.ID.String(), PlayerInput{
		Name: "Anil Joshi", Position: "Bowler", JerseyNumber: 11,
		MobileNumber: "9123456780", TshirtSize: "M",
	}, strings.NewReader("fake image bytes"), "anil.jpg")
	require.NoError(t, err)
	assert.Equal(t, event.PlayerPending, player.Status)
	require.NotNil(t, player.PhotoURL)
	assert.Equal(t, "https://i.ibb.co/anil.jpg", *player.PhotoURL)
	assert.Equal(t, 1, uploader.uploads)

	pending, err := regService.PendingRequests(ctx, team.ID.String())
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "Anil Joshi", pending[0].Name)

	require.NoError(t, regService.Approve(ctx, player.ID.String()))

	pending, err = regService.PendingRequests(ctx, team.ID.String())
	require.NoError(t, err)
	assert.Empty(t, pending)

	teamStore := store.NewTeamStore(db)
	approved, err := teamStore.GetPlayersByTeamAndStatus(ctx, team.ID.String(), event.PlayerApproved)
	require.NoError(t, err)
	require.Len(t, approved, 1)

	// A decided request cannot be decided again.
	err = regService.Approve(ctx, player.ID.String())
	assert.ErrorIs(t, err, ErrRequestNotOpen)
	err = regService.Reject(ctx, player.ID.String())
	assert.ErrorIs(t, err, ErrRequestNotOpen)
}

func TestRejectRequest(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx, _ := seedUser(t, db, "organizer@sppl.test")
	team := seedTeam(t, db, ctx, 15)
	regService := NewRegistrationService(db, store.NewTeamStore(db), store.NewHostelStore(db), nil)

	link, err := regService.GenerateLink(ctx, team.ID.String())
	require.NoError(t, err)

	player, err := regService.Submit(context.Background(), link.ID.String(), PlayerInput{
		Name: "Anil Joshi", Position: "Bowler", JerseyNumber: 11,
		MobileNumber: "9123456780", TshirtSize: "M",
	}, nil, "")
	require.NoError(t, err)

	require.NoError(t, regService.Reject(ctx, player.ID.String()))

	teamStore := store.NewTeamStore(db)
	rejected, err := teamStore.GetPlayersByTeamAndStatus(ctx, team.ID.String(), event.PlayerRejected)
	require.NoError(t, err)
	require.Len(t, rejected, 1)

	approved, err := teamStore.CountApprovedPlayers(ctx, team.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 0, approved)
}

func TestDeactivatedLinkRejectsSubmissions(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx, _ := seedUser(t, db, "organizer@sppl.test")
	team := seedTeam(t, db, ctx, 15)
	uploader := &fakeUploader{url: "https://i.ibb.co/x.jpg"}
	regService := NewRegistrationService(db, store.NewTeamStore(db), store.NewHostelStore(db), uploader)

	link, err := regService.GenerateLink(ctx, team.ID.String())
	require.NoError(t, err)

	require.NoError(t, regService.DeactivateLink(ctx, link.ID.String()))

	_, err = regService.ResolveLink(context.Background(), link.ID.String())
	assert.ErrorIs(t, err, ErrLinkInactive)

	_, err = regService.Submit(context.Background(), link.ID.String(), PlayerInput{
		Name: "Anil Joshi", Position: "Bowler", JerseyNumber: 11,
		MobileNumber: "9123456780", TshirtSize: "M",
	}, strings.NewReader("fake image bytes"), "anil.jpg")
	assert.ErrorIs(t, err, ErrLinkInactive)

	// A closed link never publishes the attached photo.
	assert.Equal(t, 0, uploader.uploads)
}

func TestSubmitInvalidInputSkipsUpload(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx, _ := seedUser(t, db, "organizer@sppl.test")
	team := seedTeam(t, db, ctx, 15)
	uploader := &fakeUploader{url: "https://i.ibb.co/x.jpg"}
	regService := NewRegistrationService(db, store.NewTeamStore(db), store.NewHostelStore(db), uploader)

	link, err := regService.GenerateLink(ctx, team.ID.String())
	require.NoError(t, err)

	_, err = regService.Submit(context.Background(), link.ID.String(), PlayerInput{
		Name: "Anil Joshi", Position: "Bowler", JerseyNumber: 11,
		MobileNumber: "not-a-number", TshirtSize: "M",
	}, strings.NewReader("fake image bytes"), "anil.jpg")
	require.Error(t, err)
	assert.IsType(t, ValidationError{}, err)
	assert.Equal(t, 0, uploader.uploads)
}

func TestResolveUnknownLink(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	regService := NewRegistrationService(db, store.NewTeamStore(db), store.NewHostelStore(db), nil)

	_, err := regService.ResolveLink(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

// Approve must do all of its reads through its own transaction; with the one
// connection the in-memory database allows, a pool read while the transaction
// is open would block forever.
func TestApproveOnSingleConnection(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx, _ := seedUser(t, db, "organizer@sppl.test")
	team := seedTeam(t, db, ctx, 15)
	regService := NewRegistrationService(db, store.NewTeamStore(db), store.NewHostelStore(db), nil)

	link, err := regService.GenerateLink(ctx, team.ID.String())
	require.NoError(t, err)

	player, err := regService.Submit(context.Background(), link.ID.String(), PlayerInput{
		Name: "Anil Joshi", Position: "Bowler", JerseyNumber: 11,
		MobileNumber: "9123456780", TshirtSize: "M",
	}, nil, "")
	require.NoError(t, err)

	deadlineCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	require.NoError(t, regService.Approve(deadlineCtx, player.ID.String()))
	require.NoError(t, deadlineCtx.Err())
}

func TestApproveBeyondCapacity(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx, _ := seedUser(t, db, "organizer@sppl.test")
	team := seedTeam(t, db, ctx, 1)
	regService := NewRegistrationService(db, store.NewTeamStore(db), store.NewHostelStore(db), nil)

	link, err := regService.GenerateLink(ctx, team.ID.String())
	require.NoError(t, err)

	first, err := regService.Submit(context.Background(), link.ID.String(), PlayerInput{
		Name: "First In", Position: "Batsman", JerseyNumber: 1,
		MobileNumber: "9123456780", TshirtSize: "M",
	}, nil, "")
	require.NoError(t, err)
	second, err := regService.Submit(context.Background(), link.ID.String(), PlayerInput{
		Name: "Second In", Position: "Bowler", JerseyNumber: 2,
		MobileNumber: "9123456781", TshirtSize: "M",
	}, nil, "")
	require.NoError(t, err)

	require.NoError(t, regService.Approve(ctx, first.ID.String()))

	err = regService.Approve(ctx, second.ID.String())
	assert.ErrorIs(t, err, ErrRosterFull)

	// The failed approval leaves the request pending.
	pending, err := regService.PendingRequests(ctx, team.ID.String())
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, second.ID, pending[0].ID)
}
