package service

import (
	"context"
	"testing"

	"github.com/PlanetSoftweb/sppl/internal/event"
	"github.com/PlanetSoftweb/sppl/internal/store"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedFixture builds two hostels, each with a cricket team, and returns the
// teams alongside a ready match service.
func seedFixture(t *testing.T, db *sqlx.DB, ctx context.Context) (*event.Team, *event.Team, *MatchService) {
	t.Helper()

	hostelService := NewHostelService(db, store.NewHostelStore(db))
	teamService := NewTeamService(db, store.NewTeamStore(db), store.NewHostelStore(db))

	var teams []*event.Team
	for _, name := range []string{"Aryabhatta Hostel", "Tagore Hostel"} {
		hostel, err := hostelService.CreateHostel(ctx, HostelInput{
			Name: name, Secret: "hostel-secret", Cricket: true, Volleyball: true,
		})
		require.NoError(t, err)
		team, err := teamService.CreateTeam(ctx, hostel.ID.String(), event.Cricket, 15)
		require.NoError(t, err)
		teams = append(teams, team)
	}

	matchService := NewMatchService(db, store.NewMatchStore(db), store.NewTeamStore(db), store.NewHostelStore(db))
	return teams[0], teams[1], matchService
}

func TestCreateMatch(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx, _ := seedUser(t, db, "organizer@sppl.test")
	team1, team2, matchService := seedFixture(t, db, ctx)

	match, err := matchService.CreateMatch(ctx, MatchInput{
		Sport:     "cricket",
		Team1ID:   team1.ID.String(),
		Team2ID:   team2.ID.String(),
		Date:      "2026-03-14",
		StartTime: "16:00",
		EndTime:   "19:00",
		Venue:     "Main Ground",
	})
	require.NoError(t, err)

	assert.Equal(t, event.MatchScheduled, match.Status)
	// Display names come from the owning hostels.
	assert.Equal(t, "Aryabhatta Hostel", match.Team1Name)
	assert.Equal(t, "Tagore Hostel", match.Team2Name)
	assert.Nil(t, match.Winner)
}

func TestCreateMatchValidation(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx, _ := seedUser(t, db, "organizer@sppl.test")
	team1, team2, matchService := seedFixture(t, db, ctx)

	valid := MatchInput{
		Sport: "cricket", Team1ID: team1.ID.String(), Team2ID: team2.ID.String(),
		Date: "2026-03-14", StartTime: "16:00", EndTime: "19:00", Venue: "Main Ground",
	}

	tests := []struct {
		name   string
		mutate func(in *MatchInput)
	}{
		{"unknown sport", func(in *MatchInput) { in.Sport = "chess" }},
		{"same team twice", func(in *MatchInput) { in.Team2ID = in.Team1ID }},
		{"bad date", func(in *MatchInput) { in.Date = "14-03-2026" }},
		{"bad time", func(in *MatchInput) { in.StartTime = "4pm" }},
		{"empty venue", func(in *MatchInput) { in.Venue = "  " }},
		{"sport mismatch", func(in *MatchInput) { in.Sport = "volleyball" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.mutate(&input)
			_, err := matchService.CreateMatch(ctx, input)
			require.Error(t, err)
			assert.IsType(t, ValidationError{}, err)
		})
	}
}

func TestCompleteMatch(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx, _ := seedUser(t, db, "organizer@sppl.test")
	team1, team2, matchService := seedFixture(t, db, ctx)

	match, err := matchService.CreateMatch(ctx, MatchInput{
		Sport: "cricket", Team1ID: team1.ID.String(), Team2ID: team2.ID.String(),
		Date: "2026-03-14", StartTime: "16:00", EndTime: "19:00", Venue: "Main Ground",
	})
	require.NoError(t, err)

	_, err = matchService.CompleteMatch(ctx, match.ID.String(), "Nobody Hostel")
	assert.ErrorIs(t, err, ErrWinnerNotInMatch)

	completed, err := matchService.CompleteMatch(ctx, match.ID.String(), "Tagore Hostel")
	require.NoError(t, err)
	assert.Equal(t, event.MatchCompleted, completed.Status)
	require.NotNil(t, completed.Winner)
	assert.Equal(t, "Tagore Hostel", *completed.Winner)

	// Both teams record a played match; only the winner records a win.
	teamStore := store.NewTeamStore(db)
	t1, err := teamStore.GetTeam(ctx, team1.ID.String())
	require.NoError(t, err)
	t2, err := teamStore.GetTeam(ctx, team2.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 1, t1.MatchesPlayed)
	assert.Equal(t, 0, t1.Wins)
	assert.Equal(t, 1, t2.MatchesPlayed)
	assert.Equal(t, 1, t2.Wins)

	_, err = matchService.CompleteMatch(ctx, match.ID.String(), "Tagore Hostel")
	assert.ErrorIs(t, err, ErrMatchNotOpen)
}

func TestCancelMatch(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx, _ := seedUser(t, db, "organizer@sppl.test")
	team1, team2, matchService := seedFixture(t, db, ctx)

	match, err := matchService.CreateMatch(ctx, MatchInput{
		Sport: "cricket", Team1ID: team1.ID.String(), Team2ID: team2.ID.String(),
		Date: "2026-03-14", StartTime: "16:00", EndTime: "19:00", Venue: "Main Ground",
	})
	require.NoError(t, err)

	cancelled, err := matchService.CancelMatch(ctx, match.ID.String())
	require.NoError(t, err)
	assert.Equal(t, event.MatchCancelled, cancelled.Status)

	// Cancelled matches never touch team counters.
	teamStore := store.NewTeamStore(db)
	t1, err := teamStore.GetTeam(ctx, team1.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 0, t1.MatchesPlayed)

	_, err = matchService.CompleteMatch(ctx, match.ID.String(), "Tagore Hostel")
	assert.ErrorIs(t, err, ErrMatchNotOpen)
}

func TestGetMatchesFilterAndOrder(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx, _ := seedUser(t, db, "organizer@sppl.test")
	team1, team2, matchService := seedFixture(t, db, ctx)

	later, err := matchService.CreateMatch(ctx, MatchInput{
		Sport: "cricket", Team1ID: team1.ID.String(), Team2ID: team2.ID.String(),
		Date: "2026-03-20", StartTime: "10:00", EndTime: "13:00", Venue: "Main Ground",
	})
	require.NoError(t, err)
	earlier, err := matchService.CreateMatch(ctx, MatchInput{
		Sport: "cricket", Team1ID: team1.ID.String(), Team2ID: team2.ID.String(),
		Date: "2026-03-14", StartTime: "16:00", EndTime: "19:00", Venue: "Main Ground",
	})
	require.NoError(t, err)

	matches, err := matchService.GetMatches(ctx, store.MatchFilter{Sport: event.Cricket})
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, earlier.ID, matches[0].ID)
	assert.Equal(t, later.ID, matches[1].ID)

	matches, err = matchService.GetMatches(ctx, store.MatchFilter{Sport: event.Volleyball})
	require.NoError(t, err)
	assert.Empty(t, matches)

	_, err = matchService.CancelMatch(ctx, later.ID.String())
	require.NoError(t, err)

	scheduled, err := matchService.GetMatches(ctx, store.MatchFilter{Status: event.MatchScheduled})
	require.NoError(t, err)
	require.Len(t, scheduled, 1)
	assert.Equal(t, earlier.ID, scheduled[0].ID)
}
