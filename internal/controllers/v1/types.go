// Package v1 implements the v1 API of the Ascent backend. Handlers bind
// input, call into the ledger and the computation engines and serialize
// the result, they hold no business logic of their own.
package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/ascent-finance/backend/internal/ledger"
	"github.com/ascent-finance/backend/internal/models"
	"github.com/ascent-finance/backend/internal/types"
	ascent_uuid "github.com/ascent-finance/backend/internal/uuid"
	"github.com/gin-gonic/gin"
)

// Controller carries the ledger all v1 handlers operate on.
type Controller struct {
	Ledger *ledger.Ledger
}

type URIID struct {
	ID ascent_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type QueryMonth struct {
	Month types.Month `form:"month" example:"2022-07"` // Year and month in YYYY-MM format
}

// monthOrCurrent returns the bound month, defaulting to the current
// calendar month when the parameter was not given.
func (q QueryMonth) monthOrCurrent() types.Month {
	if q.Month.IsZero() {
		return types.MonthOf(time.Now())
	}

	return q.Month
}

type httpError struct {
	Error string `json:"error" example:"there is no resource for the ID you specified"`
}

// status returns the appropriate HTTP status for an error.
func status(err error) int {
	if errors.Is(err, ledger.ErrPersistence) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, ledger.ErrConfirmationNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

func abortError(c *gin.Context, err error) {
	c.JSON(status(err), httpError{Error: err.Error()})
}

// RegisterRoutes attaches all v1 routes to the group.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	co.registerTransactionRoutes(r.Group("/transactions"))
	co.registerBudgetRoutes(r.Group("/budgets"))
	co.registerDashboardRoutes(r.Group("/dashboard"))
	co.registerReportRoutes(r.Group("/report"))
	registerLoanRoutes(r.Group("/loan"))
}
