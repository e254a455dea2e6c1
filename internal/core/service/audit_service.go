package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/cityhall/email-gateway/internal/core/domain"
	"github.com/cityhall/email-gateway/internal/core/ports"
)

// maxAuditRecords caps how many records a single listing returns.
const maxAuditRecords = 50

// AuditService serves audit-log reads through a short-lived cache. The cache
// is purely an optimization: any cache failure falls through to the store.
type AuditService struct {
	repo  ports.AuditRepository
	cache ports.LogCache
	log   zerolog.Logger
}

func NewAuditService(repo ports.AuditRepository, cache ports.LogCache, log zerolog.Logger) *AuditService {
	return &AuditService{repo: repo, cache: cache, log: log}
}

// ListRecent returns at most maxAuditRecords records, newest first.
func (s *AuditService) ListRecent(ctx context.Context) ([]domain.EmailLog, error) {
	if logs, ok := s.cache.Get(ctx); ok {
		return logs, nil
	}

	logs, err := s.repo.ListRecent(ctx, maxAuditRecords)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, logs); err != nil {
		s.log.Warn().Err(err).Msg("audit cache write failed")
	}
	return logs, nil
}
