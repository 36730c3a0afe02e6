package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"blogapi/services"

	"github.com/gin-gonic/gin"
)

// Every failure body is {"status": <message>}; success bodies carry
// status "OK" plus the payload.
func respondError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"status": message})
}

// respondServiceError maps the store-layer taxonomy onto HTTP statuses.
// Unrecognized errors surface their own message, as the store failure shape.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		respondError(c, http.StatusNotFound, "Not found")
	case errors.Is(err, services.ErrInvalidInput):
		respondError(c, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, services.ErrInvalidCategoryReference):
		respondError(c, http.StatusBadRequest, "Invalid category reference")
	case errors.Is(err, services.ErrCategoryInUse):
		respondError(c, http.StatusConflict, "Category is in use")
	default:
		respondError(c, http.StatusBadRequest, err.Error())
	}
}

// parseID parses the :id path segment. Non-integer ids are rejected before
// any store call happens.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return uint(id), true
}
