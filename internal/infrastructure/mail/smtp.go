// Package mail submits messages over SMTP and classifies transport failures
// into the stable domain error taxonomy, so raw transport errors never reach
// API clients.
package mail

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	gomail "github.com/wneessen/go-mail"

	"github.com/cityhall/email-gateway/internal/core/domain"
)

const transportTimeout = 15 * time.Second

// SMTPSender sends plain-text mail through a single SMTP account.
type SMTPSender struct {
	host     string
	port     int
	username string
	password string
}

func NewSMTPSender(host string, port int, username, password string) *SMTPSender {
	return &SMTPSender{host: host, port: port, username: username, password: password}
}

// Configured reports whether transport credentials are present. The check is
// repeated per request rather than at boot, so a fixed environment takes
// effect without a restart.
func (s *SMTPSender) Configured() bool {
	return s.username != "" && s.password != ""
}

// Send dials the transport, authenticates, and submits one message. Dialing
// before the submission separates credential failures from envelope
// rejections and transient network failures.
func (s *SMTPSender) Send(ctx context.Context, to, subject, body string) (string, error) {
	msg := gomail.NewMsg()
	if err := msg.From(s.username); err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrMailAddress, s.username)
	}
	if err := msg.To(to); err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrMailAddress, to)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)
	msg.SetMessageID()

	opts := []gomail.Option{
		gomail.WithPort(s.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.username),
		gomail.WithPassword(s.password),
		gomail.WithTimeout(transportTimeout),
	}
	if s.port == 465 {
		opts = append(opts, gomail.WithSSL())
	}

	client, err := gomail.NewClient(s.host, opts...)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrMailConnection, err)
	}

	if err := client.DialWithContext(ctx); err != nil {
		return "", classifyDialError(err)
	}
	defer client.Close()

	if err := client.Send(msg); err != nil {
		return "", classifySendError(err)
	}

	return msg.GetMessageID(), nil
}

// classifyDialError maps connect/handshake failures. Authentication is part
// of the dial in go-mail, so a 535 or an auth-tagged message means bad
// credentials; anything else is a connectivity problem.
func classifyDialError(err error) error {
	text := strings.ToLower(err.Error())
	if strings.Contains(text, "auth") || strings.Contains(text, "535") {
		return fmt.Errorf("%w: %v", domain.ErrMailAuth, err)
	}
	return fmt.Errorf("%w: %v", domain.ErrMailConnection, err)
}

// classifySendError maps submission failures after a successful dial.
// Envelope rejections become address errors; everything else is treated as a
// connection failure.
func classifySendError(err error) error {
	var se *gomail.SendError
	if errors.As(err, &se) {
		switch se.Reason {
		case gomail.ErrSMTPMailFrom, gomail.ErrSMTPRcptTo:
			return fmt.Errorf("%w: %v", domain.ErrMailAddress, err)
		}
	}
	return fmt.Errorf("%w: %v", domain.ErrMailConnection, err)
}
