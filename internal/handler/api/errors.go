package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"spa-promotions/internal/handler/httperr"
	"spa-promotions/internal/pkg/errs"
	"spa-promotions/internal/usecase/commands"
)

// respondError maps a marked usecase error onto the wire. Order matters:
// the transition check precedes the generic invalid-operation one because a
// workflow error can carry both marks up the wrap chain.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Forbidden", nil)

	case errors.Is(err, errs.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusConflict, err, "Invalid status transition", nil)

	case errors.Is(err, errs.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)

	case errors.Is(err, errs.ErrInvalidOperation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid operation", nil)

	case errors.Is(err, errs.ErrStoreUnavailable):
		var renameErr *commands.CategoryRenameError
		if errors.As(err, &renameErr) {
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Category rename incomplete", gin.H{
				"renamed": renameErr.Renamed,
				"failed":  renameErr.Failed,
			})
			return
		}
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Store unavailable", nil)

	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func missingIdentity(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error",
	})
}
