// Package report implements the derived-metrics computation engine. All
// functions are pure: they fold transactions and budgets into aggregates
// for a reference month and never mutate their inputs.
package report

import (
	"slices"

	"github.com/ascent-finance/backend/internal/models"
	"github.com/ascent-finance/backend/internal/types"
	"github.com/shopspring/decimal"
)

// DefaultBreakdownSize is the number of categories returned by
// CategoryBreakdown when the caller does not give a limit.
const DefaultBreakdownSize = 5

var oneHundred = decimal.NewFromInt(100)

// MonthFilter returns the transactions dated in the given month. The input
// order is preserved.
func MonthFilter(transactions []models.Transaction, month types.Month) []models.Transaction {
	filtered := make([]models.Transaction, 0, len(transactions))

	for _, t := range transactions {
		if t.Date.In(month) {
			filtered = append(filtered, t)
		}
	}

	return filtered
}

// DashboardMetrics are the headline numbers for one month.
type DashboardMetrics struct {
	Balance     decimal.Decimal `json:"balance" example:"217.34"`    // Income minus expenses, may be negative
	Income      decimal.Decimal `json:"income" example:"2317.34"`    // Sum of all income transactions in the month
	Expenses    decimal.Decimal `json:"expenses" example:"2100"`     // Sum of all expense transactions in the month
	SavingsRate decimal.Decimal `json:"savingsRate" example:"12.5"`  // Percentage of income put into the savings category
}

// Dashboard computes the dashboard metrics for the month.
//
// The savings rate is the share of income recorded as expenses in the
// savings category. It is exactly zero when the month has no income, for
// any amount of savings contributions.
func Dashboard(transactions []models.Transaction, month types.Month) DashboardMetrics {
	var income, expenses, savings decimal.Decimal

	for _, t := range MonthFilter(transactions, month) {
		switch t.Type {
		case models.TypeIncome:
			income = income.Add(t.Amount)
		case models.TypeExpense:
			expenses = expenses.Add(t.Amount)
			if t.Category == models.CategorySavings {
				savings = savings.Add(t.Amount)
			}
		}
	}

	savingsRate := decimal.Zero
	if income.IsPositive() {
		savingsRate = savings.Div(income).Mul(oneHundred)
	}

	return DashboardMetrics{
		Balance:     income.Sub(expenses),
		Income:      income,
		Expenses:    expenses,
		SavingsRate: savingsRate,
	}
}

// CategoryUtilization is the spend-vs-cap state of one budget.
type CategoryUtilization struct {
	Category     string          `json:"category" example:"food"`
	BudgetAmount decimal.Decimal `json:"budgetAmount" example:"300"`
	Spent        decimal.Decimal `json:"spent" example:"133.70"`    // Month expenses in the budget's category
	Percentage   decimal.Decimal `json:"percentage" example:"44.57"` // Spent share of the cap; 0 for a zero cap
	OverBudget   bool            `json:"overBudget" example:"false"` // True exactly when spent exceeds the cap
}

// Utilization is the budget page aggregate.
//
// TotalSpent sums every expense transaction of the month, whether or not
// its category has a budget. This mirrors the dashboard's "total spent"
// figure and means RemainingBudget also shrinks with unbudgeted spending.
type Utilization struct {
	Categories      []CategoryUtilization `json:"categories"`
	TotalBudget     decimal.Decimal       `json:"totalBudget" example:"1500"`
	TotalSpent      decimal.Decimal       `json:"totalSpent" example:"1220.50"`
	RemainingBudget decimal.Decimal       `json:"remainingBudget" example:"279.50"`
}

// BudgetUtilization computes per-budget spending against the caps for the
// month. Budgets are reported in the order they are passed in.
//
// Stored budgets always have a positive cap, but blobs written by earlier
// versions may not: a zero cap reports 0% instead of dividing by it.
func BudgetUtilization(transactions []models.Transaction, budgets []models.Budget, month types.Month) Utilization {
	expenses := make([]models.Transaction, 0, len(transactions))
	for _, t := range MonthFilter(transactions, month) {
		if t.Type == models.TypeExpense {
			expenses = append(expenses, t)
		}
	}

	utilization := Utilization{
		Categories: make([]CategoryUtilization, 0, len(budgets)),
	}

	for _, t := range expenses {
		utilization.TotalSpent = utilization.TotalSpent.Add(t.Amount)
	}

	for _, budget := range budgets {
		var spent decimal.Decimal
		for _, t := range expenses {
			if t.Category == budget.Category {
				spent = spent.Add(t.Amount)
			}
		}

		percentage := decimal.Zero
		if budget.Amount.IsPositive() {
			percentage = spent.Div(budget.Amount).Mul(oneHundred)
		}

		utilization.Categories = append(utilization.Categories, CategoryUtilization{
			Category:     budget.Category,
			BudgetAmount: budget.Amount,
			Spent:        spent,
			Percentage:   percentage,
			OverBudget:   spent.GreaterThan(budget.Amount),
		})

		utilization.TotalBudget = utilization.TotalBudget.Add(budget.Amount)
	}

	utilization.RemainingBudget = utilization.TotalBudget.Sub(utilization.TotalSpent)
	return utilization
}

// CategoryAmount is an expense total for one category.
type CategoryAmount struct {
	Category string          `json:"category" example:"food"`
	Amount   decimal.Decimal `json:"amount" example:"133.70"`
}

// groupExpenses sums the month's expenses per category. Categories appear
// in the order they first occur in the input.
func groupExpenses(transactions []models.Transaction, month types.Month) []CategoryAmount {
	totals := make(map[string]decimal.Decimal)
	grouped := []CategoryAmount{}

	for _, t := range MonthFilter(transactions, month) {
		if t.Type != models.TypeExpense {
			continue
		}

		if _, ok := totals[t.Category]; !ok {
			grouped = append(grouped, CategoryAmount{Category: t.Category})
		}
		totals[t.Category] = totals[t.Category].Add(t.Amount)
	}

	for i := range grouped {
		grouped[i].Amount = totals[grouped[i].Category]
	}

	return grouped
}

// CategoryBreakdown groups the month's expenses by category and returns
// the topN largest, sorted by amount descending. Categories with equal
// amounts keep the order in which they first occur in the input. A month
// without expenses yields an empty slice, not a zero-amount entry.
//
// topN values smaller than one fall back to DefaultBreakdownSize.
func CategoryBreakdown(transactions []models.Transaction, month types.Month, topN int) []CategoryAmount {
	if topN < 1 {
		topN = DefaultBreakdownSize
	}

	breakdown := groupExpenses(transactions, month)

	slices.SortStableFunc(breakdown, func(a, b CategoryAmount) int {
		return b.Amount.Cmp(a.Amount)
	})

	if len(breakdown) > topN {
		breakdown = breakdown[:topN]
	}

	return breakdown
}

// ReportSummary is the month summary used for reports and exports. Unlike
// CategoryBreakdown, ByCategory is complete and unranked.
type ReportSummary struct {
	TotalIncome   decimal.Decimal  `json:"totalIncome" example:"2317.34"`
	TotalExpenses decimal.Decimal  `json:"totalExpenses" example:"2100"`
	NetIncome     decimal.Decimal  `json:"netIncome" example:"217.34"`
	SavingsRate   decimal.Decimal  `json:"savingsRate" example:"12.5"`
	ByCategory    []CategoryAmount `json:"byCategory"`
}

// Summary computes the report summary for the month. The savings rate uses
// the same definition as Dashboard, so reports and dashboard agree.
func Summary(transactions []models.Transaction, month types.Month) ReportSummary {
	metrics := Dashboard(transactions, month)

	return ReportSummary{
		TotalIncome:   metrics.Income,
		TotalExpenses: metrics.Expenses,
		NetIncome:     metrics.Balance,
		SavingsRate:   metrics.SavingsRate,
		ByCategory:    groupExpenses(transactions, month),
	}
}
