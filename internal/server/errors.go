package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rezonia/payref/internal/model"
)

// statusFor maps codec error kinds to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, model.ErrUnsupportedIBAN),
		errors.Is(err, model.ErrAmountOutOfRange):
		return http.StatusUnprocessableEntity
	case errors.Is(err, model.ErrInvalidCharacter),
		errors.Is(err, model.ErrEmptyReference),
		errors.Is(err, model.ErrInvalidReference),
		errors.Is(err, model.ErrInvalidBarcodeField):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) badRequest(c *gin.Context, message string, err error) {
	response := ErrorResponse{
		Error:     message,
		RequestID: c.GetString(requestIDKey),
	}
	if err != nil {
		response.Details = err.Error()
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, response)
}

func (s *Server) codecError(c *gin.Context, operation string, err error) {
	status := statusFor(err)

	fields := []any{
		"operation", operation,
		"status_code", status,
		"request_id", c.GetString(requestIDKey),
		"error", err.Error(),
	}
	if status >= http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request.Context(), "codec operation failed", fields...)
	} else {
		s.logger.WarnContext(c.Request.Context(), "codec operation rejected", fields...)
	}

	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:     operation + " failed",
		Details:   err.Error(),
		RequestID: c.GetString(requestIDKey),
	})
}
