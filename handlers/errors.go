package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"gameshelf/services"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the envelope for every failed request:
// {status, message, timestamp}, plus a field-to-message map on
// validation failures.
type ErrorResponse struct {
	Status    int               `json:"status"`
	Message   string            `json:"message"`
	Timestamp time.Time         `json:"timestamp"`
	Errors    map[string]string `json:"errors,omitempty"`
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{
		Status:    status,
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
}

func respondValidationError(c *gin.Context, verr *services.ValidationError) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Status:    http.StatusBadRequest,
		Message:   "validation failed",
		Timestamp: time.Now().UTC(),
		Errors:    verr.Fields,
	})
}

// respondServiceError maps domain errors to their status codes.
// Anything unclassified is a 500 with a generic message; the real
// error is only logged.
func respondServiceError(c *gin.Context, err error) {
	var notFound *services.GameNotFoundError
	var validation *services.ValidationError

	switch {
	case errors.As(err, &notFound):
		respondError(c, http.StatusNotFound, notFound.Error())
	case errors.As(err, &validation):
		respondValidationError(c, validation)
	default:
		log.Printf("unexpected error: %v", err)
		respondError(c, http.StatusInternalServerError, "internal server error")
	}
}
