package v1

import (
	"fmt"

	"github.com/ascent-finance/backend/internal/models"
	"github.com/ascent-finance/backend/internal/report"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type BudgetEditable struct {
	Category string              `json:"category" example:"food"`                  // The expense category the cap applies to
	Amount   decimal.Decimal     `json:"amount" example:"300"`                     // The monthly cap, must be > 0
	Period   models.BudgetPeriod `json:"period" example:"monthly" enums:"monthly"` // Defaults to monthly
}

// model returns the store resource for the editable fields.
func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		Category: editable.Category,
		Amount:   editable.Amount,
		Period:   editable.Period,
	}
}

// BudgetAmountEditable is the request body for amount updates. Category
// and ID of a budget never change after creation.
type BudgetAmountEditable struct {
	Amount decimal.Decimal `json:"amount" example:"350"` // The new monthly cap, must be > 0
}

type BudgetLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/budgets/d430d7c3-d14c-4712-9336-ee56965a6673"` // The budget itself
}

// Budget is the representation of a Budget in API v1.
type Budget struct {
	models.Budget
	Links BudgetLinks `json:"links"`
}

// newBudget returns the API v1 representation of the resource.
func newBudget(c *gin.Context, model models.Budget) Budget {
	url := c.GetString("baseURL")

	return Budget{
		Budget: model,
		Links: BudgetLinks{
			Self: fmt.Sprintf("%s/v1/budgets/%s", url, model.ID),
		},
	}
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`  // The Budget data, if the request was successful
	Error *string `json:"error"` // The error, if any occurred
}

type BudgetListResponse struct {
	Data  []Budget `json:"data"`  // List of budgets
	Error *string  `json:"error"` // The error, if any occurred
}

type UtilizationResponse struct {
	Data  *report.Utilization `json:"data"`  // Budget utilization for the month
	Error *string             `json:"error"` // The error, if any occurred
}
