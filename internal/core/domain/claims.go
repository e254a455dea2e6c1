package domain

import "time"

// Claims are the verified contents of a session token. They are a snapshot of
// the identity at issuance time; a later role change does not affect tokens
// already in flight.
type Claims struct {
	UserID    int64
	Username  string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
