package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"snipboard/backend/internal/apperror"
)

// DetailResponse documents the {"detail": ...} error envelope in swagger.
type DetailResponse struct {
	Detail string `json:"detail" example:"Not found."`
}

// detailBody wraps a message in the {"detail": ...} envelope used by every
// non-field error response.
func detailBody(message string) gin.H {
	return gin.H{"detail": message}
}

// writeError translates a service error into its wire shape: a
// ValidationError becomes 400 with the field map as the body, ErrNotFound
// becomes 404 {"detail": "Not found."}, and anything else is a 500. Transient
// store failures are terminal for the request — no retries.
func writeError(c *gin.Context, err error) {
	var verr *apperror.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, verr.Fields)
	case errors.Is(err, apperror.ErrNotFound):
		c.JSON(http.StatusNotFound, detailBody("Not found."))
	default:
		c.JSON(http.StatusInternalServerError, detailBody("A server error occurred."))
	}
}

// parseID reads the numeric :id path parameter. A non-numeric value behaves
// like a missing resource, matching a router that only matches numeric pks.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, detailBody("Not found."))
		return 0, false
	}
	return uint(id), true
}
