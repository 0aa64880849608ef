package event

import (
	"time"

	"github.com/google/uuid"
)

type Sport string

const (
	Cricket    Sport = "cricket"
	Volleyball Sport = "volleyball"
	Kabaddi    Sport = "kabaddi"
)

func AllSports() []Sport {
	return []Sport{Cricket, Volleyball, Kabaddi}
}

func ValidSport(s string) bool {
	switch Sport(s) {
	case Cricket, Volleyball, Kabaddi:
		return true
	}
	return false
}

type Hostel struct {
	ID            uuid.UUID `db:"id" json:"id"`
	OwnerID       uuid.UUID `db:"owner_id" json:"-"`
	Name          string    `db:"name" json:"name"`
	TotalStudents int       `db:"total_students" json:"totalStudents"`

	// Never returned to clients; bcrypt hash of the dashboard secret.
	SecretHash string `db:"secret_hash" json:"-"`

	CricketEnabled    bool `db:"cricket_enabled" json:"cricket"`
	VolleyballEnabled bool `db:"volleyball_enabled" json:"volleyball"`
	KabaddiEnabled    bool `db:"kabaddi_enabled" json:"kabaddi"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

func (h *Hostel) SportEnabled(sport Sport) bool {
	switch sport {
	case Cricket:
		return h.CricketEnabled
	case Volleyball:
		return h.VolleyballEnabled
	case Kabaddi:
		return h.KabaddiEnabled
	}
	return false
}
