package models

import (
	"github.com/shopspring/decimal"
)

// BudgetPeriod is the time span a budget cap applies to. Only monthly
// budgets are supported.
type BudgetPeriod string

const PeriodMonthly BudgetPeriod = "monthly"

// Valid reports whether the period is one of the defined values.
func (p BudgetPeriod) Valid() bool {
	return p == PeriodMonthly
}

// Budget is a monthly spending cap for one expense category.
//
// At most one budget exists per category: saving a budget for a category
// that already has one replaces it.
type Budget struct {
	DefaultModel
	Category string          `json:"category" example:"food"`            // The expense category the cap applies to
	Amount   decimal.Decimal `json:"amount" example:"300"`               // The monthly cap, always > 0
	Period   BudgetPeriod    `json:"period" example:"monthly" enums:"monthly"` // The period the cap applies to
}

// Validate checks the invariants for a budget before it is admitted to the
// store. Zero-amount budgets are rejected here so that utilization
// percentages are always well-defined for stored budgets.
func (b Budget) Validate() error {
	if !b.Amount.IsPositive() {
		return ErrBudgetAmountNotPositive
	}

	if !ValidCategory(TypeExpense, b.Category) {
		return ErrCategoryInvalid
	}

	if !b.Period.Valid() {
		return ErrBudgetPeriodInvalid
	}

	return nil
}
