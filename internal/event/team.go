package event

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

type Team struct {
	ID            uuid.UUID `db:"id" json:"id"`
	HostelID      uuid.UUID `db:"hostel_id" json:"hostelId"`
	OwnerID       uuid.UUID `db:"owner_id" json:"-"`
	Sport         Sport     `db:"sport" json:"sport"`
	MaxPlayers    int       `db:"max_players" json:"maxPlayers"`
	MatchesPlayed int       `db:"matches_played" json:"matchesPlayed"`
	Wins          int       `db:"wins" json:"wins"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
}

type PlayerStatus string

const (
	PlayerPending  PlayerStatus = "PENDING"
	PlayerApproved PlayerStatus = "APPROVED"
	PlayerRejected PlayerStatus = "REJECTED"
)

type TshirtSize string

const (
	SizeXS  TshirtSize = "XS"
	SizeS   TshirtSize = "S"
	SizeM   TshirtSize = "M"
	SizeL   TshirtSize = "L"
	SizeXL  TshirtSize = "XL"
	SizeXXL TshirtSize = "XXL"
)

func ValidTshirtSize(s string) bool {
	switch TshirtSize(s) {
	case SizeXS, SizeS, SizeM, SizeL, SizeXL, SizeXXL:
		return true
	}
	return false
}

var mobilePattern = regexp.MustCompile(`^[0-9]{10}$`)

func ValidMobileNumber(s string) bool {
	return mobilePattern.MatchString(s)
}

type Player struct {
	ID           uuid.UUID    `db:"id" json:"id"`
	TeamID       uuid.UUID    `db:"team_id" json:"teamId"`
	Name         string       `db:"name" json:"name"`
	Position     string       `db:"position" json:"position"`
	JerseyNumber int          `db:"jersey_number" json:"jerseyNumber"`
	MobileNumber string       `db:"mobile_number" json:"mobileNumber"`
	TshirtSize   TshirtSize   `db:"tshirt_size" json:"tshirtSize"`
	PhotoURL     *string      `db:"photo_url" json:"photoUrl,omitempty"`
	Status       PlayerStatus `db:"status" json:"status"`
	CreatedAt    time.Time    `db:"created_at" json:"createdAt"`
}

// RegistrationLink is a capability token: knowing its id is enough to submit
// a pending player registration for the target team while the link is active.
type RegistrationLink struct {
	ID        uuid.UUID `db:"id" json:"id"`
	TeamID    uuid.UUID `db:"team_id" json:"teamId"`
	OwnerID   uuid.UUID `db:"owner_id" json:"-"`
	Sport     Sport     `db:"sport" json:"sport"`
	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
