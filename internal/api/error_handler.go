package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/cityhall/email-gateway/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"success": false, "message": "..."}.
//
// With dev set, 5xx responses append the underlying error text. Production
// clients only ever see the stable messages.
func NewHTTPErrorHandler(log zerolog.Logger, dev bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if dev && code >= http.StatusInternalServerError {
			msg = fmt.Sprintf("%s: %v", msg, err)
		}
		_ = c.JSON(code, errorResponse{Success: false, Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, middleware rejections).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes. Business-rule failures
	// are 400; transport and store failures are 500 with stable messages that
	// never echo the raw transport error.
	switch {
	case errors.Is(err, domain.ErrMissingFields):
		return http.StatusBadRequest, "all fields are required"
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest, "invalid role"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusBadRequest, "user already exists"
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrUserNotFound):
		return http.StatusBadRequest, "invalid username or password"
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusForbidden, "invalid or expired token"
	case errors.Is(err, domain.ErrMailNotConfigured):
		return http.StatusInternalServerError, "server configuration error: missing email credentials"
	case errors.Is(err, domain.ErrMailAuth):
		return http.StatusInternalServerError, "email authentication failed, check the mail credentials"
	case errors.Is(err, domain.ErrMailConnection):
		return http.StatusInternalServerError, "failed to connect to the mail server"
	case errors.Is(err, domain.ErrMailAddress):
		return http.StatusInternalServerError, "invalid email address format"
	}

	// Unexpected error (store failures included): log the real cause, return
	// a generic message so schema and infrastructure details never leak.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
