package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cityhall/email-gateway/internal/core/ports"
)

// StatusHandler reports basic server health and whether the outbound mail
// transport has credentials configured.
type StatusHandler struct {
	mailer ports.Mailer
}

func NewStatusHandler(mailer ports.Mailer) *StatusHandler {
	return &StatusHandler{mailer: mailer}
}

type statusResponse struct {
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	Timestamp       string `json:"timestamp"`
	EmailConfigured bool   `json:"emailConfigured"`
}

// Status handles GET /api/status.
func (h *StatusHandler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, statusResponse{
		Success:         true,
		Message:         "server is running",
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
		EmailConfigured: h.mailer.Configured(),
	})
}
