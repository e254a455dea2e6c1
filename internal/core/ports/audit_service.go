package ports

import (
	"context"

	"github.com/cityhall/email-gateway/internal/core/domain"
)

type AuditService interface {
	ListRecent(ctx context.Context) ([]domain.EmailLog, error)
}
