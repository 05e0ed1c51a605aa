package report

import (
	"github.com/ascent-finance/backend/internal/models"
	"github.com/ascent-finance/backend/internal/types"
)

// ExportDocument is the serializable report artifact for one month. The
// presentation layer turns it into a downloadable file, the engine only
// constructs it.
type ExportDocument struct {
	Period       string               `json:"period" example:"2022-04"`
	Summary      ReportSummary        `json:"summary"`
	Transactions []models.Transaction `json:"transactions"` // Month-filtered, date descending
	Budgets      []models.Budget      `json:"budgets"`      // All budgets, not month-scoped
}

// BuildExportDocument assembles the export for the month.
func BuildExportDocument(transactions []models.Transaction, budgets []models.Budget, month types.Month) ExportDocument {
	filtered := MonthFilter(transactions, month)
	models.SortTransactions(filtered)

	return ExportDocument{
		Period:       month.String(),
		Summary:      Summary(transactions, month),
		Transactions: filtered,
		Budgets:      budgets,
	}
}
