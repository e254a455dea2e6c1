package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cityhall/email-gateway/internal/core/domain"
)

const defaultTokenTTL = time.Hour

// TokenService issues and verifies HS256 session tokens. Tokens carry an
// identity snapshot and expire after tokenTTL; there is no revocation.
type TokenService struct {
	secret   []byte
	tokenTTL time.Duration
}

func NewTokenService(secret string, tokenTTL time.Duration) *TokenService {
	if tokenTTL == 0 {
		tokenTTL = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), tokenTTL: tokenTTL}
}

func (s *TokenService) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"role":     user.Role,
		"iat":      now.Unix(),
		"exp":      now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and validates a signed token. Malformed, badly signed and
// expired tokens are all reported as domain.ErrInvalidToken.
func (s *TokenService) Verify(token string) (*domain.Claims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)
	if username == "" || role == "" {
		return nil, domain.ErrInvalidToken
	}

	out := &domain.Claims{Username: username, Role: role}
	if sub, ok := claims["sub"].(float64); ok {
		out.UserID = int64(sub)
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		out.IssuedAt = iat.Time
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}
