package v1

import (
	"fmt"
	"net/http"

	"github.com/ascent-finance/backend/internal/httputil"
	"github.com/ascent-finance/backend/internal/report"
	"github.com/gin-gonic/gin"
)

func (co Controller) registerReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsGet)
	r.GET("", co.GetReport)

	r.OPTIONS("/export", httputil.OptionsGet)
	r.GET("/export", co.GetReportExport)
}

type ReportResponse struct {
	Data  *report.ReportSummary `json:"data"`  // The month summary
	Error *string               `json:"error"` // The error, if any occurred
}

// @Summary		Report summary
// @Description	Returns income, expenses, net income, savings rate and the full per-category expense totals for the month
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	ReportResponse
// @Failure		400		{object}	ReportResponse
// @Param			month	query		string	false	"Month in YYYY-MM format. Defaults to the current month."
// @Router			/v1/report [get]
func (co Controller) GetReport(c *gin.Context) {
	var query QueryMonth
	if err := c.Bind(&query); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ReportResponse{Error: &e})
		return
	}

	summary := report.Summary(co.Ledger.TransactionSnapshot(), query.monthOrCurrent())
	c.JSON(http.StatusOK, ReportResponse{Data: &summary})
}

// @Summary		Report export
// @Description	Returns the month report as a downloadable document
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	report.ExportDocument
// @Failure		400		{object}	httpError
// @Param			month	query		string	false	"Month in YYYY-MM format. Defaults to the current month."
// @Router			/v1/report/export [get]
func (co Controller) GetReportExport(c *gin.Context) {
	var query QueryMonth
	if err := c.Bind(&query); err != nil {
		abortError(c, err)
		return
	}

	month := query.monthOrCurrent()
	document := report.BuildExportDocument(
		co.Ledger.TransactionSnapshot(),
		co.Ledger.BudgetSnapshot(),
		month,
	)

	c.Header("content-disposition", fmt.Sprintf("attachment; filename=ascent-report-%s.json", month))
	c.JSON(http.StatusOK, document)
}
