package event

import (
	"time"

	"github.com/google/uuid"
)

type MatchStatus string

const (
	MatchScheduled MatchStatus = "scheduled"
	MatchCompleted MatchStatus = "completed"
	MatchCancelled MatchStatus = "cancelled"
)

type Match struct {
	ID        uuid.UUID `db:"id" json:"id"`
	OwnerID   uuid.UUID `db:"owner_id" json:"-"`
	Sport     Sport     `db:"sport" json:"sport"`
	Team1ID   uuid.UUID `db:"team_1_id" json:"team1Id"`
	Team2ID   uuid.UUID `db:"team_2_id" json:"team2Id"`
	Team1Name string    `db:"team_1_name" json:"team1Name"`
	Team2Name string    `db:"team_2_name" json:"team2Name"`

	// Date is the calendar day as "2006-01-02"; start and end are "15:04".
	// Kept as strings so the stored value is exactly what was scheduled,
	// independent of server timezone.
	Date      string `db:"date" json:"date"`
	StartTime string `db:"start_time" json:"startTime"`
	EndTime   string `db:"end_time" json:"endTime"`

	Venue  string      `db:"venue" json:"venue"`
	Status MatchStatus `db:"status" json:"status"`
	Winner *string     `db:"winner" json:"winner,omitempty"`

	Round       *int `db:"round" json:"round,omitempty"`
	MatchNumber *int `db:"match_number" json:"matchNumber,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
