package mail

import (
	"errors"
	"testing"

	gomail "github.com/wneessen/go-mail"

	"github.com/cityhall/email-gateway/internal/core/domain"
)

func TestSMTPSender_Configured(t *testing.T) {
	cases := []struct {
		user, pass string
		want       bool
	}{
		{"user@example.com", "app-password", true},
		{"", "app-password", false},
		{"user@example.com", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		s := NewSMTPSender("smtp.gmail.com", 465, tc.user, tc.pass)
		if s.Configured() != tc.want {
			t.Fatalf("Configured() with user=%q pass=%q: expected %v", tc.user, tc.pass, tc.want)
		}
	}
}

func TestClassifyDialError(t *testing.T) {
	cases := []struct {
		err  error
		want error
	}{
		{errors.New("535 5.7.8 Username and Password not accepted"), domain.ErrMailAuth},
		{errors.New("smtp auth failed"), domain.ErrMailAuth},
		{errors.New("dial tcp 142.250.0.1:465: i/o timeout"), domain.ErrMailConnection},
		{errors.New("dial tcp: connection refused"), domain.ErrMailConnection},
	}
	for _, tc := range cases {
		got := classifyDialError(tc.err)
		if !errors.Is(got, tc.want) {
			t.Fatalf("classifyDialError(%v): expected %v, got %v", tc.err, tc.want, got)
		}
	}
}

func TestClassifySendError(t *testing.T) {
	rcptErr := &gomail.SendError{Reason: gomail.ErrSMTPRcptTo}
	if got := classifySendError(rcptErr); !errors.Is(got, domain.ErrMailAddress) {
		t.Fatalf("expected ErrMailAddress for recipient rejection, got %v", got)
	}

	fromErr := &gomail.SendError{Reason: gomail.ErrSMTPMailFrom}
	if got := classifySendError(fromErr); !errors.Is(got, domain.ErrMailAddress) {
		t.Fatalf("expected ErrMailAddress for sender rejection, got %v", got)
	}

	dataErr := &gomail.SendError{Reason: gomail.ErrSMTPData}
	if got := classifySendError(dataErr); !errors.Is(got, domain.ErrMailConnection) {
		t.Fatalf("expected ErrMailConnection for data-phase failure, got %v", got)
	}

	if got := classifySendError(errors.New("broken pipe")); !errors.Is(got, domain.ErrMailConnection) {
		t.Fatalf("expected ErrMailConnection for raw error, got %v", got)
	}
}

func TestSMTPSender_Send_InvalidRecipient(t *testing.T) {
	s := NewSMTPSender("smtp.gmail.com", 465, "user@example.com", "app-password")

	// Envelope validation fails locally, before any connection is attempted.
	if _, err := s.Send(t.Context(), "not-an-address", "hi", "hello"); !errors.Is(err, domain.ErrMailAddress) {
		t.Fatalf("expected ErrMailAddress, got %v", err)
	}
}
