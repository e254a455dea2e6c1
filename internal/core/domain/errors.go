package domain

import "errors"

var (
	// ErrMissingFields is returned when a required request field is absent or
	// empty. Always raised before any external call is made.
	ErrMissingFields = errors.New("missing required fields")

	// ErrInvalidRole is returned when a registration names a role outside the
	// closed role set.
	ErrInvalidRole = errors.New("invalid role")

	// ErrUserExists is returned when a registration collides with an existing
	// username (case-exact match).
	ErrUserExists = errors.New("user already exists")

	// ErrUserNotFound is returned by the identity store when no account
	// matches. Login deliberately folds it into ErrInvalidCredentials so the
	// response never reveals which half of the credentials was wrong.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials covers both unknown username and wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidToken covers malformed, badly signed and expired session
	// tokens alike. The recovery action (re-login) is the same for all three,
	// so callers are not told which one occurred.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrMailNotConfigured is returned when the SMTP credentials are absent
	// from the environment.
	ErrMailNotConfigured = errors.New("mail transport not configured")

	// ErrMailAuth is a mail transport authentication failure.
	ErrMailAuth = errors.New("mail transport authentication failed")

	// ErrMailConnection is a mail transport connection or timeout failure.
	ErrMailConnection = errors.New("mail transport connection failed")

	// ErrMailAddress is an envelope rejection (bad sender or recipient
	// address).
	ErrMailAddress = errors.New("invalid email address")
)
