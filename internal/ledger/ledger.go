// Package ledger implements the in-memory stores for transactions and
// budgets. A Ledger is an explicit context object: it owns both
// collections, is passed to everything that needs them and persists a full
// snapshot through its Gateway after every mutation.
//
// The Ledger is mutated from a single logical thread of control and is not
// safe for concurrent use.
package ledger

import (
	"errors"
	"fmt"
	"slices"

	"github.com/ascent-finance/backend/internal/models"
	"github.com/ascent-finance/backend/internal/types"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
)

var (
	// ErrPersistence reports a failed snapshot save. The in-memory change
	// has been applied, the session is not lost.
	ErrPersistence = errors.New("could not save to the persistence gateway, changes are kept in memory")
)

// Gateway loads and saves the two collections as a whole. Load must return
// empty slices when nothing is stored or the stored data is unreadable.
type Gateway interface {
	Load() ([]models.Transaction, []models.Budget, error)
	Save(transactions []models.Transaction, budgets []models.Budget) error
	Ping() error
}

// Ledger holds the transaction and budget stores.
type Ledger struct {
	gateway Gateway

	// Newest transaction first, matching insertion order.
	transactions []models.Transaction

	// Budgets in creation order, at most one per category.
	budgets []models.Budget

	pending map[uuid.UUID]pendingDeletion
}

// New returns an empty Ledger persisting through the gateway.
func New(gateway Gateway) *Ledger {
	return &Ledger{
		gateway: gateway,
		pending: make(map[uuid.UUID]pendingDeletion),
	}
}

// Load hydrates the stores from the gateway, replacing the current state.
func (l *Ledger) Load() error {
	transactions, budgets, err := l.gateway.Load()
	if err != nil {
		return err
	}

	l.transactions = transactions
	l.budgets = budgets
	return nil
}

// persist saves a full snapshot of both stores.
func (l *Ledger) persist() error {
	err := l.gateway.Save(l.TransactionSnapshot(), l.BudgetSnapshot())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return nil
}

// TransactionSnapshot returns a copy of all transactions, newest first.
func (l *Ledger) TransactionSnapshot() []models.Transaction {
	return slices.Clone(l.transactions)
}

// BudgetSnapshot returns a copy of all budgets in creation order.
func (l *Ledger) BudgetSnapshot() []models.Budget {
	return slices.Clone(l.budgets)
}

// CreateTransaction validates the transaction, assigns it an ID and
// timestamps and admits it to the store.
func (l *Ledger) CreateTransaction(transaction models.Transaction) (models.Transaction, error) {
	if err := transaction.Validate(); err != nil {
		return models.Transaction{}, err
	}

	transaction.DefaultModel = models.NewDefaultModel()

	// Newest first, like the listing order
	l.transactions = slices.Insert(l.transactions, 0, transaction)

	return transaction, l.persist()
}

// UpdateTransaction replaces all editable fields of the transaction with
// the given ID. ID and CreatedAt are preserved.
func (l *Ledger) UpdateTransaction(id uuid.UUID, update models.Transaction) (models.Transaction, error) {
	if err := update.Validate(); err != nil {
		return models.Transaction{}, err
	}

	i := slices.IndexFunc(l.transactions, func(t models.Transaction) bool { return t.ID == id })
	if i < 0 {
		return models.Transaction{}, models.ErrResourceNotFound
	}

	update.DefaultModel = l.transactions[i].DefaultModel
	update.Touch()
	l.transactions[i] = update

	return update, l.persist()
}

// Transaction returns the transaction with the given ID.
func (l *Ledger) Transaction(id uuid.UUID) (models.Transaction, error) {
	i := slices.IndexFunc(l.transactions, func(t models.Transaction) bool { return t.ID == id })
	if i < 0 {
		return models.Transaction{}, models.ErrResourceNotFound
	}

	return l.transactions[i], nil
}

// TransactionFilter restricts the transaction listing. Zero values mean
// "no restriction".
type TransactionFilter struct {
	Type        models.TransactionType
	Category    string
	Date        types.Date
	Month       types.Month
	Description string // glob pattern matched against the description
	Limit       int    // maximum number of results, 0 for all
}

// Transactions lists transactions matching the filter, sorted by date
// descending. Transactions on the same day keep a deterministic order by
// sorting on the creation timestamp, newest first.
func (l *Ledger) Transactions(filter TransactionFilter) []models.Transaction {
	matches := make([]models.Transaction, 0, len(l.transactions))

	for _, t := range l.transactions {
		if filter.Type != "" && t.Type != filter.Type {
			continue
		}

		if filter.Category != "" && t.Category != filter.Category {
			continue
		}

		if !filter.Date.IsZero() && !t.Date.Equal(filter.Date) {
			continue
		}

		if !filter.Month.IsZero() && !t.Date.In(filter.Month) {
			continue
		}

		if filter.Description != "" && !glob.Glob(filter.Description, t.Description) {
			continue
		}

		matches = append(matches, t)
	}

	models.SortTransactions(matches)

	if filter.Limit > 0 && len(matches) > filter.Limit {
		matches = matches[:filter.Limit]
	}

	return matches
}

// SaveBudget validates the budget and admits it to the store. If a budget
// for the same category already exists it is replaced in place, so there is
// always at most one budget per category. The replacement is a new
// resource: it gets a fresh ID.
func (l *Ledger) SaveBudget(budget models.Budget) (models.Budget, error) {
	if budget.Period == "" {
		budget.Period = models.PeriodMonthly
	}

	if err := budget.Validate(); err != nil {
		return models.Budget{}, err
	}

	budget.DefaultModel = models.NewDefaultModel()

	i := slices.IndexFunc(l.budgets, func(b models.Budget) bool { return b.Category == budget.Category })
	if i >= 0 {
		l.budgets[i] = budget
	} else {
		l.budgets = append(l.budgets, budget)
	}

	return budget, l.persist()
}

// UpdateBudgetAmount sets a new cap for the budget with the given ID.
// ID and category never change on update.
func (l *Ledger) UpdateBudgetAmount(id uuid.UUID, amount decimal.Decimal) (models.Budget, error) {
	i := slices.IndexFunc(l.budgets, func(b models.Budget) bool { return b.ID == id })
	if i < 0 {
		return models.Budget{}, models.ErrResourceNotFound
	}

	update := l.budgets[i]
	update.Amount = amount

	if err := update.Validate(); err != nil {
		return models.Budget{}, err
	}

	update.Touch()
	l.budgets[i] = update

	return update, l.persist()
}

// Budget returns the budget with the given ID.
func (l *Ledger) Budget(id uuid.UUID) (models.Budget, error) {
	i := slices.IndexFunc(l.budgets, func(b models.Budget) bool { return b.ID == id })
	if i < 0 {
		return models.Budget{}, models.ErrResourceNotFound
	}

	return l.budgets[i], nil
}

// Ping reports whether the persistence gateway is reachable.
func (l *Ledger) Ping() error {
	return l.gateway.Ping()
}
