package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SanthiIla22/Ai-travel-mate-project/internal/repository"
	"github.com/SanthiIla22/Ai-travel-mate-project/internal/service"
)

// MessageResponse carries a human-readable message body.
type MessageResponse struct {
	Message string `json:"message"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, MessageResponse{Message: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, service.ErrInvalidLocation),
		errors.Is(err, service.ErrInvalidTripID),
		errors.Is(err, service.ErrInvalidCategory):
		return http.StatusBadRequest

	case errors.Is(err, repository.ErrNotInitialized):
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}
