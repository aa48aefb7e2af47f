// Package middleware contains HTTP middleware for the delivery layer.
package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"lectern/internal/delivery/http/response"
	domainerrors "lectern/internal/domain/errors"

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

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. The mapping is
// the whole external error contract: validation errors carry their full
// violation list, everything else collapses to one stable code and message.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var verrs domainerrors.ValidationErrors
	if errors.As(err, &verrs) {
		//nolint:errcheck
		response.Error(c, verrs.HTTPCode(), verrs.ErrorCode(), "Invalid parameters", verrs.Messages())

		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		//nolint:errcheck
		response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), nil)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		//nolint:errcheck
		response.Error(c, httpErr.Code, "HTTP_ERROR", fmt.Sprintf("%v", httpErr.Message), nil)

		return
	}

	// Anything unmapped is a bug; log it and answer with the opaque error.
	m.logger.Error("Unhandled error",
		"error", err.Error(),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	//nolint:errcheck
	response.Error(c, http.StatusInternalServerError,
		domainerrors.ErrUnexpected.ErrorCode(), domainerrors.ErrUnexpected.Message(), nil)
}
