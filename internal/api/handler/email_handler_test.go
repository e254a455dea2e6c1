package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cityhall/email-gateway/internal/core/domain"
)

type stubEmailService struct {
	sendFn func(ctx context.Context, req domain.SendRequest, claims *domain.Claims) (*domain.DispatchResult, error)
}

func (s *stubEmailService) Send(ctx context.Context, req domain.SendRequest, claims *domain.Claims) (*domain.DispatchResult, error) {
	return s.sendFn(ctx, req, claims)
}

type stubAuditService struct {
	logs []domain.EmailLog
	err  error
}

func (s *stubAuditService) ListRecent(_ context.Context) ([]domain.EmailLog, error) {
	return s.logs, s.err
}

func authedContext(e *echo.Echo, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", int64(1))
	c.Set("username", "alice")
	c.Set("role", domain.RoleAdmin1)
	return c, rec
}

func TestEmailHandler_Send_Success(t *testing.T) {
	e := newTestEcho()
	svc := &stubEmailService{
		sendFn: func(ctx context.Context, req domain.SendRequest, claims *domain.Claims) (*domain.DispatchResult, error) {
			if req.To != "x@y.com" || req.Subject != "hi" || req.Message != "hello" {
				t.Fatalf("unexpected request: %+v", req)
			}
			if claims.Username != "alice" || claims.Role != domain.RoleAdmin1 {
				t.Fatalf("unexpected claims: %+v", claims)
			}
			return &domain.DispatchResult{MessageID: "msg-1", SentBy: claims.Username, SenderRole: claims.Role}, nil
		},
	}
	handler := NewEmailHandler(svc, &stubAuditService{})

	c, rec := authedContext(e, http.MethodPost, "/api/send-email", `{"to":"x@y.com","subject":"hi","message":"hello"}`)
	if err := handler.Send(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != true || resp["messageId"] != "msg-1" || resp["sentBy"] != "alice" || resp["senderRole"] != domain.RoleAdmin1 {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestEmailHandler_Send_MissingFields(t *testing.T) {
	e := newTestEcho()
	svc := &stubEmailService{
		sendFn: func(ctx context.Context, req domain.SendRequest, claims *domain.Claims) (*domain.DispatchResult, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	handler := NewEmailHandler(svc, &stubAuditService{})

	c, _ := authedContext(e, http.MethodPost, "/api/send-email", `{"to":"x@y.com","subject":"hi"}`)
	err := handler.Send(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestEmailHandler_Send_MissingClaims(t *testing.T) {
	e := newTestEcho()
	handler := NewEmailHandler(&stubEmailService{}, &stubAuditService{})

	req := httptest.NewRequest(http.MethodPost, "/api/send-email", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Send(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError without claims, got %v", err)
	}
}

func TestEmailHandler_Logs(t *testing.T) {
	e := newTestEcho()
	now := time.Now().UTC()
	audit := &stubAuditService{logs: []domain.EmailLog{
		{ID: 2, Recipient: "b@y.com", Subject: "s2", SenderUsername: "alice", SentAt: now},
		{ID: 1, Recipient: "a@y.com", Subject: "s1", SenderUsername: "alice", SentAt: now.Add(-time.Hour)},
	}}
	handler := NewEmailHandler(&stubEmailService{}, audit)

	c, rec := authedContext(e, http.MethodGet, "/api/email-logs", "")
	if err := handler.Logs(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Success bool              `json:"success"`
		Logs    []domain.EmailLog `json:"logs"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.Success || len(resp.Logs) != 2 {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if resp.Logs[0].ID != 2 {
		t.Fatalf("expected newest record first, got %+v", resp.Logs)
	}
}

func TestEmailHandler_Logs_Empty(t *testing.T) {
	e := newTestEcho()
	handler := NewEmailHandler(&stubEmailService{}, &stubAuditService{})

	c, rec := authedContext(e, http.MethodGet, "/api/email-logs", "")
	if err := handler.Logs(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if _, ok := resp["logs"].([]any); !ok {
		t.Fatalf("expected logs to be an empty array, got %+v", resp["logs"])
	}
}
