package service

import "github.com/PlanetSoftweb/sppl/internal/event"

type ScheduleGroup struct {
	Date    string        `json:"date"`
	Matches []event.Match `json:"matches"`
}

// GroupSchedule partitions matches for one sport by calendar day. The input
// order is preserved inside each group, and groups appear in the order their
// dates first occur; with the store's ascending sort that yields an
// ascending-by-date schedule. An empty result is a valid state.
func GroupSchedule(matches []event.Match, sport event.Sport) []ScheduleGroup {
	byDate := make(map[string]int)
	var groups []ScheduleGroup

	for _, m := range matches {
		if m.Sport != sport {
			continue
		}
		idx, exists := byDate[m.Date]
		if !exists {
			idx = len(groups)
			byDate[m.Date] = idx
			groups = append(groups, ScheduleGroup{Date: m.Date})
		}
		groups[idx].Matches = append(groups[idx].Matches, m)
	}

	return groups
}
