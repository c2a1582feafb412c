package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/pagination"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/validators"
)

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.Abort(c, validators.BindingError(err))
		return false
	}
	return true
}

func bindQuery(c *gin.Context, req any) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		httperr.Abort(c, validators.BindingError(err))
		return false
	}
	return true
}

// bindPage reads the filter and the page window from the same query string.
func bindPage(c *gin.Context, filter any) (pagination.Request, bool) {
	var page pagination.Request
	if !bindQuery(c, filter) || !bindQuery(c, &page) {
		return page, false
	}
	return page.Normalize(), true
}
