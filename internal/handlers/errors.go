package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskhive/taskhive/internal/types"
)

// RespondError maps a domain error to its HTTP status and a generic JSON
// body. Persistence failures are logged server-side and never leak to the
// client.
func RespondError(ctx *gin.Context, err error) {
	switch {
	case types.IsValidationError(err):
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "error", "errorMessage": err.Error()})
	case errors.Is(err, types.ErrDuplicateName), errors.Is(err, types.ErrDuplicateEmail):
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "error", "errorMessage": err.Error()})
	case errors.Is(err, types.ErrInvalidCredentials):
		ctx.JSON(http.StatusUnauthorized, gin.H{"status": "error", "errorMessage": err.Error()})
	case errors.Is(err, types.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"status": "error", "errorMessage": "Not found"})
	default:
		log.Printf("Internal error: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"status": "error", "errorMessage": "Internal server error"})
	}
}
