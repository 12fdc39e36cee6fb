package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/eaglebank/ledger/shared/errs"
	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

func RespondWithError(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Message: message})
}

// StatusFor maps a failure kind to its HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// RespondWithDomainError writes err with the status of its kind. Errors of
// unknown kind are logged and reported as fallback with a 500.
func RespondWithDomainError(c *gin.Context, err error, fallback string) {
	code := StatusFor(err)
	if code == http.StatusInternalServerError {
		slog.Error("request failed", "path", c.FullPath(), "error", err)
	}
	RespondWithError(c, code, errs.Message(err, fallback))
}
