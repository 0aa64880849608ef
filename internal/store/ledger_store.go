package store

import (
	"context"

	"github.com/PlanetSoftweb/sppl/internal/ledger"
	"github.com/jmoiron/sqlx"
)

type LedgerStore struct {
	db *sqlx.DB
}

func NewLedgerStore(db *sqlx.DB) *LedgerStore {
	return &LedgerStore{db: db}
}

func (s *LedgerStore) CreateExpense(ctx context.Context, expense *ledger.Expense) error {
	_, err := s.db.NamedExecContext(ctx, `INSERT INTO expenses (id, owner_id, description, amount, category, date)
		VALUES (:id, :owner_id, :description, :amount, :category, :date)`, expense)
	return err
}

func (s *LedgerStore) GetExpensesByOwner(ctx context.Context, ownerID string) ([]ledger.Expense, error) {
	var expenses []ledger.Expense
	err := s.db.SelectContext(ctx, &expenses, "SELECT * FROM expenses WHERE owner_id = ? ORDER BY date DESC", ownerID)
	return expenses, err
}

func (s *LedgerStore) GetExpense(ctx context.Context, id string) (*ledger.Expense, error) {
	var expense ledger.Expense
	err := s.db.GetContext(ctx, &expense, "SELECT * FROM expenses WHERE id = ?", id)
	return &expense, err
}

func (s *LedgerStore) DeleteExpense(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", id)
	return err
}

func (s *LedgerStore) CreateSponsorTx(ctx context.Context, tx *sqlx.Tx, sponsor *ledger.Sponsor) error {
	_, err := tx.NamedExecContext(ctx, `INSERT INTO sponsors (id, owner_id, name, amount, date)
		VALUES (:id, :owner_id, :name, :amount, :date)`, sponsor)
	return err
}

func (s *LedgerStore) GetSponsorsByOwner(ctx context.Context, ownerID string) ([]ledger.Sponsor, error) {
	var sponsors []ledger.Sponsor
	err := s.db.SelectContext(ctx, &sponsors, "SELECT * FROM sponsors WHERE owner_id = ? ORDER BY date DESC", ownerID)
	return sponsors, err
}

func (s *LedgerStore) GetSponsor(ctx context.Context, id string) (*ledger.Sponsor, error) {
	var sponsor ledger.Sponsor
	err := s.db.GetContext(ctx, &sponsor, "SELECT * FROM sponsors WHERE id = ?", id)
	return &sponsor, err
}

func (s *LedgerStore) DeleteSponsor(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM sponsors WHERE id = ?", id)
	return err
}

func (s *LedgerStore) GetBudgetByOwner(ctx context.Context, ownerID string) (*ledger.Budget, error) {
	var budget ledger.Budget
	err := s.db.GetContext(ctx, &budget, "SELECT * FROM budgets WHERE owner_id = ?", ownerID)
	return &budget, err
}

func (s *LedgerStore) GetBudgetByOwnerTx(ctx context.Context, tx *sqlx.Tx, ownerID string) (*ledger.Budget, error) {
	var budget ledger.Budget
	err := tx.GetContext(ctx, &budget, "SELECT * FROM budgets WHERE owner_id = ?", ownerID)
	return &budget, err
}

func (s *LedgerStore) CreateBudgetTx(ctx context.Context, tx *sqlx.Tx, budget *ledger.Budget) error {
	_, err := tx.NamedExecContext(ctx, `INSERT INTO budgets (id, owner_id, total_amount, sponsorship_amount, start_date, end_date)
		VALUES (:id, :owner_id, :total_amount, :sponsorship_amount, :start_date, :end_date)`, budget)
	return err
}

func (s *LedgerStore) UpdateBudgetTx(ctx context.Context, tx *sqlx.Tx, budget *ledger.Budget) error {
	_, err := tx.NamedExecContext(ctx, `UPDATE budgets SET
		total_amount = :total_amount,
		sponsorship_amount = :sponsorship_amount,
		start_date = :start_date,
		end_date = :end_date
		WHERE id = :id`, budget)
	return err
}
