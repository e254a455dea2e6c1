package domain

import "time"

// SendRequest is a transient dispatch request. It is never persisted; only
// its outcome is recorded in the audit log.
type SendRequest struct {
	To      string
	Subject string
	Message string
}

// DispatchResult describes a successful mail submission.
type DispatchResult struct {
	MessageID  string
	SentBy     string
	SenderRole string
}

// EmailLog is an append-only audit record of a completed dispatch.
type EmailLog struct {
	ID             int64     `json:"id"`
	Recipient      string    `json:"recipient"`
	Subject        string    `json:"subject"`
	Message        string    `json:"message"`
	SenderUsername string    `json:"sender_username"`
	SentAt         time.Time `json:"sent_at"`
}
