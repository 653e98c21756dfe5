// Package controllers holds the gin handlers. Controllers parse the request,
// call a service and map service errors onto HTTP status codes; business rules
// live in the services.
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/rlozl15/pypost/internal/apperrors"
	"github.com/rlozl15/pypost/internal/models"

	"github.com/gin-gonic/gin"
)

// respondError renders a service error with the matching status code
func respondError(ctx *gin.Context, err error) {
	var validation *apperrors.ValidationError
	switch {
	case errors.As(err, &validation):
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{validation.Field: validation.Message}})
	case errors.Is(err, apperrors.ErrUnauthorized):
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		ctx.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		// never echo internal error detail to the client
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// currentUser returns the authenticated user set by the auth middleware, or
// nil for anonymous requests
func currentUser(ctx *gin.Context) *models.User {
	val, exists := ctx.Get("user")
	if !exists {
		return nil
	}
	return val.(*models.User)
}

// parseID parses the :id path parameter
func parseID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// parsePagination parses the page/limit query parameters
func parsePagination(ctx *gin.Context) (page, limit int) {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err = strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}

	return page, limit
}
