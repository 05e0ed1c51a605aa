package models

import (
	"errors"
)

var (
	ErrResourceNotFound = errors.New("there is no resource for the ID you specified")

	ErrAmountNegative          = errors.New("transaction amounts must be zero or positive, the sign is derived from the type")
	ErrDescriptionEmpty        = errors.New("the description must not be empty")
	ErrTransactionTypeInvalid  = errors.New("the transaction type must be \"income\" or \"expense\"")
	ErrCategoryInvalid         = errors.New("the category is not valid for this transaction type")
	ErrDateZero                = errors.New("the date must be set")
	ErrBudgetAmountNotPositive = errors.New("budget amounts must be larger than zero")
	ErrBudgetPeriodInvalid     = errors.New("the budget period must be \"monthly\"")
)
