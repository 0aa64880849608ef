package service

import (
	"testing"

	"github.com/PlanetSoftweb/sppl/internal/event"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scheduleMatch(sport event.Sport, date string) event.Match {
	return event.Match{
		ID:     uuid.New(),
		Sport:  sport,
		Date:   date,
		Status: event.MatchScheduled,
	}
}

func TestGroupSchedule(t *testing.T) {
	matches := []event.Match{
		scheduleMatch(event.Cricket, "2026-03-01"),
		scheduleMatch(event.Volleyball, "2026-03-01"),
		scheduleMatch(event.Cricket, "2026-03-01"),
		scheduleMatch(event.Cricket, "2026-03-02"),
		scheduleMatch(event.Kabaddi, "2026-03-02"),
	}

	groups := GroupSchedule(matches, event.Cricket)

	require.Len(t, groups, 2)
	assert.Equal(t, "2026-03-01", groups[0].Date)
	assert.Len(t, groups[0].Matches, 2)
	assert.Equal(t, "2026-03-02", groups[1].Date)
	assert.Len(t, groups[1].Matches, 1)

	// Every grouped match plays the filtered sport, and the union of the
	// groups is exactly the filtered subset.
	seen := make(map[uuid.UUID]bool)
	for _, g := range groups {
		for _, m := range g.Matches {
			assert.Equal(t, event.Cricket, m.Sport)
			assert.False(t, seen[m.ID], "duplicate match in groups")
			seen[m.ID] = true
		}
	}
	expected := 0
	for _, m := range matches {
		if m.Sport == event.Cricket {
			expected++
			assert.True(t, seen[m.ID])
		}
	}
	assert.Len(t, seen, expected)
}

func TestGroupSchedulePreservesDateOrder(t *testing.T) {
	matches := []event.Match{
		scheduleMatch(event.Kabaddi, "2026-03-01"),
		scheduleMatch(event.Kabaddi, "2026-03-03"),
		scheduleMatch(event.Kabaddi, "2026-03-03"),
		scheduleMatch(event.Kabaddi, "2026-03-05"),
	}

	groups := GroupSchedule(matches, event.Kabaddi)

	require.Len(t, groups, 3)
	assert.Equal(t, []string{"2026-03-01", "2026-03-03", "2026-03-05"},
		[]string{groups[0].Date, groups[1].Date, groups[2].Date})
}

func TestGroupScheduleEmpty(t *testing.T) {
	matches := []event.Match{
		scheduleMatch(event.Cricket, "2026-03-01"),
	}

	groups := GroupSchedule(matches, event.Volleyball)

	assert.Empty(t, groups)
}
