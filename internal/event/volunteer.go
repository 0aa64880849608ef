package event

import (
	"time"

	"github.com/google/uuid"
)

type Volunteer struct {
	ID            uuid.UUID `db:"id" json:"id"`
	OwnerID       uuid.UUID `db:"owner_id" json:"-"`
	Name          string    `db:"name" json:"name"`
	Role          string    `db:"role" json:"role"`
	ContactNumber string    `db:"contact_number" json:"contactNumber"`
	Email         string    `db:"email" json:"email"`
	AssignedSport Sport     `db:"assigned_sport" json:"assignedSport"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
}
