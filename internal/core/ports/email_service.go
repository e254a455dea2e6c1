package ports

import (
	"context"

	"github.com/cityhall/email-gateway/internal/core/domain"
)

type EmailService interface {
	Send(ctx context.Context, req domain.SendRequest, claims *domain.Claims) (*domain.DispatchResult, error)
}
