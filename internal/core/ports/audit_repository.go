package ports

import (
	"context"

	"github.com/cityhall/email-gateway/internal/core/domain"
)

// AuditRepository persists dispatch outcomes in a store independent from the
// identity store. Records are append-only.
type AuditRepository interface {
	Append(ctx context.Context, log *domain.EmailLog) error
	ListRecent(ctx context.Context, limit int) ([]domain.EmailLog, error)
}
