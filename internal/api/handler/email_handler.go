package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cityhall/email-gateway/internal/core/domain"
	"github.com/cityhall/email-gateway/internal/core/ports"
)

type EmailHandler struct {
	emailService ports.EmailService
	auditService ports.AuditService
}

func NewEmailHandler(emailService ports.EmailService, auditService ports.AuditService) *EmailHandler {
	return &EmailHandler{emailService: emailService, auditService: auditService}
}

type sendEmailRequest struct {
	To      string `json:"to" validate:"required"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type sendEmailResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	MessageID  string `json:"messageId"`
	SentBy     string `json:"sentBy"`
	SenderRole string `json:"senderRole"`
}

type emailLogsResponse struct {
	Success bool              `json:"success"`
	Logs    []domain.EmailLog `json:"logs"`
}

// Send dispatches an email on behalf of the authenticated sender.
//
// @Summary      Send an email
// @Tags         email
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      sendEmailRequest  true  "Message to send"
// @Success      200   {object}  sendEmailResponse
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Failure      403   {object}  map[string]any
// @Failure      500   {object}  map[string]any
// @Router       /api/send-email [post]
func (h *EmailHandler) Send(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req sendEmailRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.emailService.Send(c.Request().Context(), domain.SendRequest{
		To:      req.To,
		Subject: req.Subject,
		Message: req.Message,
	}, claims)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, sendEmailResponse{
		Success:    true,
		Message:    "email sent successfully",
		MessageID:  result.MessageID,
		SentBy:     result.SentBy,
		SenderRole: result.SenderRole,
	})
}

// Logs returns the most recent audit records, newest first.
//
// @Summary      List recent email audit records
// @Tags         email
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  emailLogsResponse
// @Failure      401  {object}  map[string]any
// @Failure      403  {object}  map[string]any
// @Failure      500  {object}  map[string]any
// @Router       /api/email-logs [get]
func (h *EmailHandler) Logs(c echo.Context) error {
	logs, err := h.auditService.ListRecent(c.Request().Context())
	if err != nil {
		return err
	}

	if logs == nil {
		logs = []domain.EmailLog{}
	}
	return c.JSON(http.StatusOK, emailLogsResponse{Success: true, Logs: logs})
}
