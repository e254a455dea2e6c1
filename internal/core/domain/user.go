package domain

import "time"

const (
	RoleAdmin1 = "admin1"
	RoleAdmin2 = "admin2"
	RoleAdmin3 = "admin3"
	RoleMayor  = "mayor"
	RoleVice   = "vice"
)

// ValidRoles is the closed set of roles an account may be registered with.
var ValidRoles = map[string]struct{}{
	RoleAdmin1: {},
	RoleAdmin2: {},
	RoleAdmin3: {},
	RoleMayor:  {},
	RoleVice:   {},
}

// AuthorizedSenderRoles may submit a send-email request.
var AuthorizedSenderRoles = []string{RoleAdmin1, RoleAdmin2, RoleAdmin3, RoleMayor, RoleVice}

// AuditReaderRoles may read the email audit log. Independent from the sender
// set: membership in one grants nothing in the other.
var AuditReaderRoles = []string{RoleAdmin3}

// User models a registered account in the identity store.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsValidRole reports whether role belongs to the closed role set.
func IsValidRole(role string) bool {
	_, ok := ValidRoles[role]
	return ok
}
