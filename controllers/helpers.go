package controllers

import (
	"errors"
	"net/http"

	"journal-portal-api/models"
	"journal-portal-api/services"

	"github.com/gin-gonic/gin"
)

// currentUser pulls the authenticated identity out of the Gin context set by
// the auth middleware.
func currentUser(c *gin.Context) (int, models.Role, bool) {
	idValue, ok := c.Get("userID")
	if !ok {
		return 0, "", false
	}
	roleValue, ok := c.Get("role")
	if !ok {
		return 0, "", false
	}
	id, okID := idValue.(int)
	role, okRole := roleValue.(models.Role)
	if !okID || !okRole {
		return 0, "", false
	}
	return id, role, true
}

// abortServiceError maps service sentinel errors to HTTP statuses. Unknown
// errors become 500 without leaking internals.
func abortServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidTransition), errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
