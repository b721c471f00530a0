package controllers

import (
	"net/http"

	"github.com/envelope-zero/savings-goals/internal/httputil"
	"github.com/envelope-zero/savings-goals/internal/store"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterHealthzRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsHealthz)
	r.GET("", co.GetHealthz)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func (co Controller) OptionsHealthz(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object}	httputil.HTTPError
// @Router			/healthz [get]
func (co Controller) GetHealthz(c *gin.Context) {
	if p, ok := co.Store.(store.Pinger); ok {
		if err := p.Ping(); err != nil {
			httputil.ErrorHandler(c, err)
			return
		}
	}

	c.Status(http.StatusNoContent)
}
