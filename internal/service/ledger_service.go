package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/PlanetSoftweb/sppl/internal/ledger"
	"github.com/PlanetSoftweb/sppl/internal/middleware"
	"github.com/PlanetSoftweb/sppl/internal/store"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type LedgerService struct {
	db    *sqlx.DB
	store *store.LedgerStore
}

func NewLedgerService(db *sqlx.DB, store *store.LedgerStore) *LedgerService {
	return &LedgerService{db: db, store: store}
}

type LedgerData struct {
	Expenses []ledger.Expense `json:"expenses"`
	Sponsors []ledger.Sponsor `json:"sponsors"`
	Budget   *ledger.Budget   `json:"budget"`
	Totals   ledger.Totals    `json:"totals"`
}

func (s *LedgerService) GetLedger(ctx context.Context) (*LedgerData, error) {
	ownerID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("user ID not found in the context")
	}

	expenses, err := s.store.GetExpensesByOwner(ctx, ownerID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	sponsors, err := s.store.GetSponsorsByOwner(ctx, ownerID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to load sponsors: %w", err)
	}

	budget, err := s.store.GetBudgetByOwner(ctx, ownerID.String())
	if err == sql.ErrNoRows {
		budget = nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to load budget: %w", err)
	}

	return &LedgerData{
		Expenses: expenses,
		Sponsors: sponsors,
		Budget:   budget,
		Totals:   ledger.Aggregate(expenses, sponsors, budget),
	}, nil
}

type ExpenseInput struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
}

func (s *LedgerService) AddExpense(ctx context.Context, input ExpenseInput) (*ledger.Expense, error) {
	ownerID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("user ID not found in the context")
	}

	input.Description = strings.TrimSpace(input.Description)
	if input.Description == "" {
		return nil, validationf("description is required")
	}
	if input.Amount < 0 {
		return nil, validationf("amount cannot be negative")
	}
	if !ledger.ValidCategory(input.Category) {
		return nil, validationf("invalid expense category")
	}
	if input.Date == "" {
		input.Date = time.Now().Format("2006-01-02")
	}

	expense := &ledger.Expense{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Description: input.Description,
		Amount:      input.Amount,
		Category:    ledger.ExpenseCategory(input.Category),
		Date:        input.Date,
	}
	if err := s.store.CreateExpense(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// Deleting an expense or sponsor removes the record only; budget totals are
// never rolled back. Recorded sponsorship outlives its sponsor row.
func (s *LedgerService) DeleteExpense(ctx context.Context, id string) error {
	ownerID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return fmt.Errorf("user ID not found in the context")
	}

	expense, err := s.store.GetExpense(ctx, id)
	if err != nil {
		return err
	}
	if expense.OwnerID != ownerID {
		return ErrNotOwner
	}
	return s.store.DeleteExpense(ctx, id)
}

func (s *LedgerService) DeleteSponsor(ctx context.Context, id string) error {
	ownerID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return fmt.Errorf("user ID not found in the context")
	}

	sponsor, err := s.store.GetSponsor(ctx, id)
	if err != nil {
		return err
	}
	if sponsor.OwnerID != ownerID {
		return ErrNotOwner
	}
	return s.store.DeleteSponsor(ctx, id)
}

type BudgetInput struct {
	TotalAmount   float64 `json:"totalAmount"`
	SponsorName   string  `json:"sponsorName"`
	SponsorAmount float64 `json:"sponsorAmount"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
}

// UpdateBudget applies a budget form submission in one transaction: the
// optional sponsor insert and the budget upsert commit or roll back together.
// The stored total becomes base + sponsor amount; the sponsorship running sum
// grows by the sponsor amount.
func (s *LedgerService) UpdateBudget(ctx context.Context, input BudgetInput) (*ledger.Budget, error) {
	ownerID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, fmt.Errorf("user ID not found in the context")
	}

	if input.TotalAmount < 0 {
		return nil, validationf("budget amount cannot be negative")
	}
	input.SponsorName = strings.TrimSpace(input.SponsorName)
	if input.SponsorAmount < 0 {
		return nil, validationf("sponsor amount cannot be negative")
	}
	for _, d := range []string{input.StartDate, input.EndDate} {
		if _, err := time.Parse("2006-01-02", d); err != nil {
			return nil, validationf("validity dates must be in YYYY-MM-DD format")
		}
	}

	sponsorAmount := 0.0
	if input.SponsorName != "" && input.SponsorAmount > 0 {
		sponsorAmount = input.SponsorAmount
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}
	defer tx.Rollback()

	if sponsorAmount > 0 {
		sponsor := &ledger.Sponsor{
			ID:      uuid.New(),
			OwnerID: ownerID,
			Name:    input.SponsorName,
			Amount:  sponsorAmount,
			Date:    time.Now().Format("2006-01-02"),
		}
		if err := s.store.CreateSponsorTx(ctx, tx, sponsor); err != nil {
			return nil, fmt.Errorf("failed to update budget: %w", err)
		}
	}

	budget, err := s.store.GetBudgetByOwnerTx(ctx, tx, ownerID.String())
	if err == sql.ErrNoRows {
		budget = &ledger.Budget{
			ID:                uuid.New(),
			OwnerID:           ownerID,
			TotalAmount:       input.TotalAmount + sponsorAmount,
			SponsorshipAmount: sponsorAmount,
			StartDate:         input.StartDate,
			EndDate:           input.EndDate,
		}
		if err := s.store.CreateBudgetTx(ctx, tx, budget); err != nil {
			return nil, fmt.Errorf("failed to update budget: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	} else {
		budget.TotalAmount = input.TotalAmount + sponsorAmount
		budget.SponsorshipAmount += sponsorAmount
		budget.StartDate = input.StartDate
		budget.EndDate = input.EndDate
		if err := s.store.UpdateBudgetTx(ctx, tx, budget); err != nil {
			return nil, fmt.Errorf("failed to update budget: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}
	return budget, nil
}
