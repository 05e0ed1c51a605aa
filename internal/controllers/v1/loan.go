package v1

import (
	"net/http"

	"github.com/ascent-finance/backend/internal/httputil"
	"github.com/ascent-finance/backend/internal/loan"
	"github.com/gin-gonic/gin"
)

func registerLoanRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsPost)
	r.POST("", EvaluateLoan)
}

// LoanEvaluation is the representation of a loan evaluation in API v1.
type LoanEvaluation struct {
	loan.Evaluation
	Recommendations []string `json:"recommendations"` // Advice derived from the failed rules
}

type LoanResponse struct {
	Data  *LoanEvaluation `json:"data"`  // The evaluation, if the input was valid
	Error *string         `json:"error"` // The error, if any occurred
}

// @Summary		Evaluate car purchase
// @Description	Checks a car purchase against the 20/3/8 affordability rule
// @Tags			Loan
// @Accept			json
// @Produce		json
// @Success		200		{object}	LoanResponse
// @Failure		400		{object}	LoanResponse
// @Param			input	body		loan.Input	true	"Purchase parameters"
// @Router			/v1/loan [post]
func EvaluateLoan(c *gin.Context) {
	var input loan.Input
	if err := httputil.BindData(c, &input); err != nil {
		e := err.Error()
		c.JSON(status(err), LoanResponse{Error: &e})
		return
	}

	evaluation, err := loan.Evaluate(input)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, LoanResponse{Error: &e})
		return
	}

	data := LoanEvaluation{
		Evaluation:      evaluation,
		Recommendations: evaluation.Recommendations(),
	}
	c.JSON(http.StatusOK, LoanResponse{Data: &data})
}
