package v1

import (
	"net/http"

	"github.com/ascent-finance/backend/internal/httputil"
	"github.com/ascent-finance/backend/internal/ledger"
	"github.com/ascent-finance/backend/internal/models"
	"github.com/ascent-finance/backend/internal/report"
	"github.com/gin-gonic/gin"
)

func (co Controller) registerBudgetRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", httputil.OptionsGetPost)
		r.GET("", co.GetBudgets)
		r.POST("", co.SaveBudget)
	}

	r.OPTIONS("/utilization", httputil.OptionsGet)
	r.GET("/utilization", co.GetBudgetUtilization)

	// Budget with ID
	{
		r.OPTIONS("/:id", httputil.OptionsGetPatchDelete)
		r.GET("/:id", co.GetBudget)
		r.PATCH("/:id", co.UpdateBudget)
		r.DELETE("/:id", co.DeleteBudget)
	}
}

// @Summary		Save budget
// @Description	Creates a budget for a category. If the category already has a budget, it is replaced.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		201		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budgets [post]
func (co Controller) SaveBudget(c *gin.Context) {
	var editable BudgetEditable

	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	budget, err := co.Ledger.SaveBudget(editable.model())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	data := newBudget(c, budget)
	c.JSON(http.StatusCreated, BudgetResponse{Data: &data})
}

// @Summary		List budgets
// @Description	Returns all budgets in creation order
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetListResponse
// @Router			/v1/budgets [get]
func (co Controller) GetBudgets(c *gin.Context) {
	budgets := co.Ledger.BudgetSnapshot()

	data := make([]Budget, 0, len(budgets))
	for _, budget := range budgets {
		data = append(data, newBudget(c, budget))
	}

	c.JSON(http.StatusOK, BudgetListResponse{Data: data})
}

// @Summary		Get budget
// @Description	Returns a specific budget
// @Tags			Budgets
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		400	{object}	BudgetResponse
// @Failure		404	{object}	BudgetResponse
// @Param			id	path		string	true	"ID of the budget"
// @Router			/v1/budgets/{id} [get]
func (co Controller) GetBudget(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	budget, err := co.Ledger.Budget(uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	data := newBudget(c, budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}

// @Summary		Update budget amount
// @Description	Sets a new cap for the budget. ID and category never change.
// @Tags			Budgets
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		404		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			id		path		string					true	"ID of the budget"
// @Param			budget	body		BudgetAmountEditable	true	"New amount"
// @Router			/v1/budgets/{id} [patch]
func (co Controller) UpdateBudget(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	var editable BudgetAmountEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	budget, err := co.Ledger.UpdateBudgetAmount(uri.ID.UUID, editable.Amount)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{Error: &e})
		return
	}

	data := newBudget(c, budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}

// @Summary		Delete budget
// @Description	Removes the budget for its category
// @Tags			Budgets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID of the budget"
// @Router			/v1/budgets/{id} [delete]
func (co Controller) DeleteBudget(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		abortError(c, err)
		return
	}

	confirmation, err := co.Ledger.RequestDeletion(uri.ID.UUID)
	if err != nil {
		abortError(c, err)
		return
	}

	if confirmation.Kind != ledger.KindBudget {
		_ = co.Ledger.Cancel(confirmation.Token)
		abortError(c, models.ErrResourceNotFound)
		return
	}

	if err := co.Ledger.Confirm(confirmation.Token); err != nil {
		abortError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary		Budget utilization
// @Description	Returns spending against each budget cap for the month
// @Tags			Budgets
// @Produce		json
// @Success		200		{object}	UtilizationResponse
// @Failure		400		{object}	UtilizationResponse
// @Param			month	query		string	false	"Month in YYYY-MM format. Defaults to the current month."
// @Router			/v1/budgets/utilization [get]
func (co Controller) GetBudgetUtilization(c *gin.Context) {
	var query QueryMonth
	if err := c.Bind(&query); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, UtilizationResponse{Error: &e})
		return
	}

	utilization := report.BudgetUtilization(
		co.Ledger.TransactionSnapshot(),
		co.Ledger.BudgetSnapshot(),
		query.monthOrCurrent(),
	)

	c.JSON(http.StatusOK, UtilizationResponse{Data: &utilization})
}
