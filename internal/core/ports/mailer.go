package ports

import "context"

// Mailer submits a single message to the outbound mail transport.
type Mailer interface {
	// Configured reports whether transport credentials are present.
	Configured() bool
	// Send delivers the message and returns the transport message id.
	Send(ctx context.Context, to, subject, body string) (string, error)
}
