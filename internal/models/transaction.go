package models

import (
	"slices"
	"strings"

	"github.com/ascent-finance/backend/internal/types"
	"github.com/shopspring/decimal"
)

// TransactionType partitions transactions into money coming in and money
// going out.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Valid reports whether the type is one of the defined values.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction is a single dated income or expense record.
//
// The amount is always zero or positive, its sign for balance purposes is
// derived from the type.
type Transaction struct {
	DefaultModel
	Description string          `json:"description" example:"Lunch"`                           // What the money was for
	Amount      decimal.Decimal `json:"amount" example:"14.03"`                                // The amount, always >= 0
	Category    string          `json:"category" example:"food"`                               // Category tag, valid for the type
	Type        TransactionType `json:"type" example:"expense" enums:"income,expense"`         // Whether this is income or an expense
	Date        types.Date      `json:"date" example:"2022-04-02"`                             // Calendar date of the transaction
}

// Validate checks the invariants for a transaction before it is admitted
// to the store. Aggregation trusts these once data is in.
func (t Transaction) Validate() error {
	if strings.TrimSpace(t.Description) == "" {
		return ErrDescriptionEmpty
	}

	if t.Amount.IsNegative() {
		return ErrAmountNegative
	}

	if !t.Type.Valid() {
		return ErrTransactionTypeInvalid
	}

	if !ValidCategory(t.Type, t.Category) {
		return ErrCategoryInvalid
	}

	if t.Date.IsZero() {
		return ErrDateZero
	}

	return nil
}

// SortTransactions sorts by date descending, then by creation timestamp
// descending. The sort is stable, so equal transactions keep their order.
func SortTransactions(transactions []Transaction) {
	slices.SortStableFunc(transactions, func(a, b Transaction) int {
		if !a.Date.Equal(b.Date) {
			if a.Date.After(b.Date) {
				return -1
			}
			return 1
		}

		return b.CreatedAt.Compare(a.CreatedAt)
	})
}
