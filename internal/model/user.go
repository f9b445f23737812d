package model

import "time"

// Role names a user's position in the tenant hierarchy.  Every mutating
// operation in the service layer is gated on one or more of these values.
const (
	RoleAdmin       = "ADMIN"
	RoleCompany     = "COMPANY"
	RoleDistributor = "DISTRIBUTOR"
	RoleCashier     = "CASHIER"
)

// ValidRole reports whether s is one of the four known role names.
func ValidRole(s string) bool {
	switch s {
	case RoleAdmin, RoleCompany, RoleDistributor, RoleCashier:
		return true
	}
	return false
}

// User represents an account that can authenticate and act against the
// system.  Inactive users fail every authorization check regardless of
// role.
//
// Fields:
//  ID           – opaque identifier assigned by the repository.
//  Email        – unique login address; uniqueness enforced at creation.
//  DisplayName  – human-readable name shown in notifications and reports.
//  PasswordHash – bcrypt hash of the login password.
//  Role         – one of the Role* constants.
//  IsActive     – whether the account may act; deactivation is one-way.
//  CreatedAt    – creation timestamp (UTC).
//  UpdatedAt    – last update timestamp (UTC).
type User struct {
	ID           string
	Email        string
	DisplayName  string
	PasswordHash string
	Role         string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RefreshToken is a long-lived session token.  Only the SHA-256 hash of
// the raw token is stored; the raw value is returned to the client once.
type RefreshToken struct {
	ID        string
	UserID    string
	TokenHash string
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}
