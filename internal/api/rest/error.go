package rest

import (
	"errors"

	"github.com/gin-gonic/gin"

	apierrors "github.com/feral-file/ff-catalog/internal/api/shared/errors"
)

// respondWithError sends an APIError in the standard envelope
func respondWithError(c *gin.Context, apiErr *apierrors.APIError) {
	c.JSON(apiErr.StatusCode(), apierrors.NewErrorResponse(apiErr))
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondWithError(c, apierrors.NewBadRequestError(message, details...))
}

// respondValidationError sends a 400 Bad Request with validation error
func respondValidationError(c *gin.Context, details string) {
	respondWithError(c, apierrors.NewValidationError(details))
}

// respondError sends an executor error, falling back to 500 for unexpected types
func respondError(c *gin.Context, err error, message string) {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		respondWithError(c, apiErr)
		return
	}
	respondWithError(c, apierrors.NewInternalError(message))
}
