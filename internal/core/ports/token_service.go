package ports

import "github.com/cityhall/email-gateway/internal/core/domain"

// TokenService issues and verifies stateless session tokens. Verification is
// pure: no store lookup and no revocation check.
type TokenService interface {
	Issue(user *domain.User) (string, error)
	Verify(token string) (*domain.Claims, error)
}
