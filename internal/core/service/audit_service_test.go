package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/cityhall/email-gateway/internal/core/domain"
)

func TestAuditService_ListRecent_CacheMiss(t *testing.T) {
	repo := &stubAuditRepo{listed: []domain.EmailLog{
		{ID: 2, Recipient: "b@y.com", SentAt: time.Now()},
		{ID: 1, Recipient: "a@y.com", SentAt: time.Now().Add(-time.Minute)},
	}}
	cache := &stubLogCache{}
	svc := NewAuditService(repo, cache, zerolog.Nop())

	logs, err := svc.ListRecent(context.Background())
	if err != nil {
		t.Fatalf("ListRecent returned error: %v", err)
	}
	if len(logs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(logs))
	}
	if repo.lastLimit != 50 {
		t.Fatalf("expected store query limited to 50, got %d", repo.lastLimit)
	}
	if cache.sets != 1 {
		t.Fatalf("expected listing to be cached, sets=%d", cache.sets)
	}
}

func TestAuditService_ListRecent_CacheHit(t *testing.T) {
	repo := &stubAuditRepo{}
	cache := &stubLogCache{hit: true, cached: []domain.EmailLog{{ID: 5}}}
	svc := NewAuditService(repo, cache, zerolog.Nop())

	logs, err := svc.ListRecent(context.Background())
	if err != nil {
		t.Fatalf("ListRecent returned error: %v", err)
	}
	if len(logs) != 1 || logs[0].ID != 5 {
		t.Fatalf("unexpected cached listing: %+v", logs)
	}
	if repo.listCalls != 0 {
		t.Fatalf("cache hit must not query the store")
	}
}

func TestAuditService_ListRecent_StoreError(t *testing.T) {
	repo := &stubAuditRepo{listErr: errors.New("store down")}
	svc := NewAuditService(repo, &stubLogCache{}, zerolog.Nop())

	if _, err := svc.ListRecent(context.Background()); err == nil {
		t.Fatalf("expected store error to propagate")
	}
}

func TestAuditService_ListRecent_CacheWriteFailureIgnored(t *testing.T) {
	repo := &stubAuditRepo{listed: []domain.EmailLog{{ID: 1}}}
	cache := &stubLogCache{setErr: errors.New("redis down")}
	svc := NewAuditService(repo, cache, zerolog.Nop())

	logs, err := svc.ListRecent(context.Background())
	if err != nil {
		t.Fatalf("cache write failure must not fail the read: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected records despite cache failure, got %d", len(logs))
	}
}
