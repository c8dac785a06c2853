package middleware

import (
	"log/slog"
	"net/http"

	domainerrors "cabby/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
// Every error maps to a deterministic status and body; internal detail and
// credential material never reach the client.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Try to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPCode(), domainerrors.Response{
			Success: false,
			Code:    appErr.HTTPCode(),
			Message: appErr.Message(),
			Error: &domainerrors.ErrorInfo{
				Code:    appErr.ErrorCode(),
				Details: appErr.Details(),
			},
		})

		return
	}

	// Check if it's Echo's HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if m, ok := httpErr.Message.(string); ok {
			message = m
		}
		c.JSON(httpErr.Code, domainerrors.Response{
			Success: false,
			Code:    httpErr.Code,
			Message: message,
			Error: &domainerrors.ErrorInfo{
				Code:    "HTTP_ERROR",
				Details: message,
			},
		})

		return
	}

	// Default to internal error; log the cause, return a generic body.
	m.logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	c.JSON(http.StatusInternalServerError, domainerrors.Response{
		Success: false,
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
		Error: &domainerrors.ErrorInfo{
			Code: "INTERNAL_ERROR",
		},
	})
}
