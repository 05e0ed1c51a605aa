package models

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CategorySavings is the distinguished expense category for money put
// aside. Savings contributions are recorded as expense transactions in
// this category and feed the savings rate.
const CategorySavings = "savings"

// IncomeCategories are the categories valid for income transactions.
var IncomeCategories = []string{
	"salary",
	"freelance",
	"investment",
	"business",
	"other",
}

// ExpenseCategories are the categories valid for expense transactions.
var ExpenseCategories = []string{
	"food",
	"transportation",
	"entertainment",
	"utilities",
	"shopping",
	"healthcare",
	"housing",
	CategorySavings,
	"education",
	"travel",
	"other",
}

// Categories returns the valid categories for a transaction type.
func Categories(t TransactionType) []string {
	if t == TypeIncome {
		return IncomeCategories
	}

	return ExpenseCategories
}

// ValidCategory reports whether the category is valid for the type.
func ValidCategory(t TransactionType, category string) bool {
	return slices.Contains(Categories(t), category)
}

var titleCaser = cases.Title(language.English)

// CategoryDisplayName formats a category tag for display,
// e.g. "food" becomes "Food".
func CategoryDisplayName(category string) string {
	words := strings.Split(category, "_")
	for i, word := range words {
		words[i] = titleCaser.String(word)
	}

	return strings.Join(words, " ")
}
