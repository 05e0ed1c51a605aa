package v1

import (
	"net/http"

	"github.com/ascent-finance/backend/internal/httputil"
	"github.com/ascent-finance/backend/internal/ledger"
	"github.com/ascent-finance/backend/internal/report"
	"github.com/gin-gonic/gin"
)

func (co Controller) registerDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", co.GetDashboard)

	r.OPTIONS("/breakdown", httputil.OptionsGet)
	r.GET("/breakdown", co.GetCategoryBreakdown)
}

// DashboardResponse is the response for the dashboard endpoint. Recent
// lists the newest transactions for the dashboard's activity widget.
type DashboardResponse struct {
	Data   *report.DashboardMetrics `json:"data"`   // Headline metrics for the month
	Recent []Transaction            `json:"recent"` // The most recent transactions
	Error  *string                  `json:"error"`  // The error, if any occurred
}

type BreakdownResponse struct {
	Data  []report.CategoryAmount `json:"data"`  // Largest expense categories of the month
	Error *string                 `json:"error"` // The error, if any occurred
}

// QueryBreakdown are the query parameters for the category breakdown.
type QueryBreakdown struct {
	QueryMonth
	Top int `form:"top" example:"5"` // Number of categories to return. Defaults to 5.
}

const recentTransactionCount = 5

// @Summary		Dashboard metrics
// @Description	Returns balance, income, expenses and savings rate for the month plus the most recent transactions
// @Tags			Dashboard
// @Produce		json
// @Success		200		{object}	DashboardResponse
// @Failure		400		{object}	DashboardResponse
// @Param			month	query		string	false	"Month in YYYY-MM format. Defaults to the current month."
// @Router			/v1/dashboard [get]
func (co Controller) GetDashboard(c *gin.Context) {
	var query QueryMonth
	if err := c.Bind(&query); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, DashboardResponse{Error: &e})
		return
	}

	metrics := report.Dashboard(co.Ledger.TransactionSnapshot(), query.monthOrCurrent())

	recent := make([]Transaction, 0, recentTransactionCount)
	for _, transaction := range co.Ledger.Transactions(ledger.TransactionFilter{Limit: recentTransactionCount}) {
		recent = append(recent, newTransaction(c, transaction))
	}

	c.JSON(http.StatusOK, DashboardResponse{Data: &metrics, Recent: recent})
}

// @Summary		Category breakdown
// @Description	Returns the largest expense categories of the month for charting
// @Tags			Dashboard
// @Produce		json
// @Success		200		{object}	BreakdownResponse
// @Failure		400		{object}	BreakdownResponse
// @Param			month	query		string	false	"Month in YYYY-MM format. Defaults to the current month."
// @Param			top		query		int		false	"Number of categories to return. Defaults to 5."
// @Router			/v1/dashboard/breakdown [get]
func (co Controller) GetCategoryBreakdown(c *gin.Context) {
	var query QueryBreakdown
	if err := c.Bind(&query); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, BreakdownResponse{Error: &e})
		return
	}

	breakdown := report.CategoryBreakdown(co.Ledger.TransactionSnapshot(), query.monthOrCurrent(), query.Top)
	c.JSON(http.StatusOK, BreakdownResponse{Data: breakdown})
}
