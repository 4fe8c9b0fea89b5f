package domain

import "time"

type UserStatus string

const (
	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusSuspended UserStatus = "SUSPENDED"
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "ACCESS"
	TokenTypeRefresh TokenType = "REFRESH"
)

type User struct {
	ID              string
	Email           string
	FullName        string
	PasswordHash    string
	ProfileImage    string
	EmailSubscribed bool
	Status          UserStatus
	Role            string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// UserToken is one row of the durable credential ledger. Rows are never
// deleted; revocation only flips the Revoked flag.
type UserToken struct {
	ID        string
	UserID    string
	Type      TokenType
	Value     string
	IssuedAt  time.Time
	ExpiresAt time.Time
	Revoked   bool
}
