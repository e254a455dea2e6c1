package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/cityhall/email-gateway/internal/api/metrics"
	"github.com/cityhall/email-gateway/internal/core/domain"
	"github.com/cityhall/email-gateway/internal/core/ports"
)

const auditWriteTimeout = 5 * time.Second

// EmailService validates a dispatch request, submits it to the mail transport
// and records the outcome in the audit store. The audit write is best-effort:
// once the transport accepted the message the caller is told the send
// succeeded regardless of whether the record could be written.
type EmailService struct {
	mailer ports.Mailer
	audit  ports.AuditRepository
	cache  ports.LogCache
	log    zerolog.Logger
}

func NewEmailService(mailer ports.Mailer, audit ports.AuditRepository, cache ports.LogCache, log zerolog.Logger) *EmailService {
	return &EmailService{mailer: mailer, audit: audit, cache: cache, log: log}
}

func (s *EmailService) Send(ctx context.Context, req domain.SendRequest, claims *domain.Claims) (*domain.DispatchResult, error) {
	// Fail fast: nothing leaves the process on an incomplete request.
	if req.To == "" || req.Subject == "" || req.Message == "" {
		return nil, domain.ErrMissingFields
	}
	if !s.mailer.Configured() {
		return nil, domain.ErrMailNotConfigured
	}

	start := time.Now()
	messageID, err := s.mailer.Send(ctx, req.To, req.Subject, req.Message)
	if err != nil {
		metrics.EmailSendErrorsTotal.WithLabelValues(sendErrorReason(err)).Inc()
		metrics.EmailSendDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		return nil, err
	}
	metrics.EmailsSentTotal.WithLabelValues(claims.Role).Inc()
	metrics.EmailSendDuration.WithLabelValues("success").Observe(time.Since(start).Seconds())

	s.appendAudit(ctx, req, claims)

	return &domain.DispatchResult{
		MessageID:  messageID,
		SentBy:     claims.Username,
		SenderRole: claims.Role,
	}, nil
}

// appendAudit writes the audit record for a delivered message. The mail is
// already out, so a failed write is logged and counted, never propagated.
func (s *EmailService) appendAudit(ctx context.Context, req domain.SendRequest, claims *domain.Claims) {
	auditCtx, cancel := context.WithTimeout(ctx, auditWriteTimeout)
	defer cancel()

	record := &domain.EmailLog{
		Recipient:      req.To,
		Subject:        req.Subject,
		Message:        req.Message,
		SenderUsername: claims.Username,
		SentAt:         time.Now().UTC(),
	}

	if err := s.audit.Append(auditCtx, record); err != nil {
		metrics.AuditWriteFailuresTotal.Inc()
		s.log.Error().Err(err).
			Str("recipient", req.To).
			Str("sender", claims.Username).
			Msg("audit log write failed after successful dispatch")
		return
	}

	if err := s.cache.Invalidate(auditCtx); err != nil {
		s.log.Warn().Err(err).Msg("audit cache invalidation failed")
	}
}

func sendErrorReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrMailAuth):
		return "auth"
	case errors.Is(err, domain.ErrMailAddress):
		return "address"
	case errors.Is(err, domain.ErrMailConnection):
		return "connection"
	default:
		return "other"
	}
}
