package ports

import (
	"context"

	"github.com/cityhall/email-gateway/internal/core/domain"
)

// LogCache is a short-lived read cache in front of the audit store. All
// methods are best-effort: a cache failure is never fatal to the caller.
type LogCache interface {
	Get(ctx context.Context) ([]domain.EmailLog, bool)
	Set(ctx context.Context, logs []domain.EmailLog) error
	Invalidate(ctx context.Context) error
}
