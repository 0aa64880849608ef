package ledger

import (
	"time"

	"github.com/google/uuid"
)

type ExpenseCategory string

const (
	CategoryEquipment    ExpenseCategory = "equipment"
	CategoryRefreshments ExpenseCategory = "refreshments"
	CategoryPrizes       ExpenseCategory = "prizes"
	CategoryVenue        ExpenseCategory = "venue"
	CategoryTransport    ExpenseCategory = "transport"
	CategoryOther        ExpenseCategory = "other"
)

func ValidCategory(s string) bool {
	switch ExpenseCategory(s) {
	case CategoryEquipment, CategoryRefreshments, CategoryPrizes,
		CategoryVenue, CategoryTransport, CategoryOther:
		return true
	}
	return false
}

type Expense struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	OwnerID     uuid.UUID       `db:"owner_id" json:"-"`
	Description string          `db:"description" json:"description"`
	Amount      float64         `db:"amount" json:"amount"`
	Category    ExpenseCategory `db:"category" json:"category"`
	Date        string          `db:"date" json:"date"`
	CreatedAt   time.Time       `db:"created_at" json:"createdAt"`
}

type Sponsor struct {
	ID        uuid.UUID `db:"id" json:"id"`
	OwnerID   uuid.UUID `db:"owner_id" json:"-"`
	Name      string    `db:"name" json:"name"`
	Amount    float64   `db:"amount" json:"amount"`
	Date      string    `db:"date" json:"date"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// Budget is a singleton per owner; the budgets table carries a unique
// constraint on owner_id so duplicates cannot accumulate.
type Budget struct {
	ID      uuid.UUID `db:"id" json:"id"`
	OwnerID uuid.UUID `db:"owner_id" json:"-"`

	// TotalAmount is replaced on every budget submission; SponsorshipAmount
	// is a running sum of every contribution ever added through the budget
	// form, and never decreases when a sponsor record is deleted.
	TotalAmount       float64 `db:"total_amount" json:"totalAmount"`
	SponsorshipAmount float64 `db:"sponsorship_amount" json:"sponsorshipAmount"`

	StartDate string    `db:"start_date" json:"startDate"`
	EndDate   string    `db:"end_date" json:"endDate"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

type Totals struct {
	TotalExpenses    float64 `json:"totalExpenses"`
	TotalSponsorship float64 `json:"totalSponsorship"`
	AvailableBudget  float64 `json:"availableBudget"`
}

// Aggregate computes the derived ledger totals from a fetched snapshot.
// AvailableBudget may be negative; that is a displayed state, not an error.
func Aggregate(expenses []Expense, sponsors []Sponsor, budget *Budget) Totals {
	var t Totals
	for _, e := range expenses {
		t.TotalExpenses += e.Amount
	}
	for _, s := range sponsors {
		t.TotalSponsorship += s.Amount
	}
	if budget != nil {
		t.AvailableBudget = budget.TotalAmount - t.TotalExpenses
	} else {
		t.AvailableBudget = -t.TotalExpenses
	}
	return t
}
