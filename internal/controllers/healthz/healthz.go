// Package healthz implements the health endpoint.
package healthz

import (
	"net/http"

	"github.com/ascent-finance/backend/internal/httputil"
	"github.com/ascent-finance/backend/internal/ledger"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, l *ledger.Ledger) {
	r.OPTIONS("", Options)
	r.GET("", Get(l))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Success		204
// @Failure		500	{object}	map[string]string
// @Router			/healthz [get]
func Get(l *ledger.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := l.Ping(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.Status(http.StatusNoContent)
	}
}
