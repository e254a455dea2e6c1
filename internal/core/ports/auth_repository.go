package ports

import (
	"context"

	"github.com/cityhall/email-gateway/internal/core/domain"
)

// AuthRepository defines the interface for identity persistence.
type AuthRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
