package pasetotoken

import (
	"time"

	"github.com/google/uuid"
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims is the app-facing token payload.
type Claims struct {
	Type TokenType

	UserID    uuid.UUID
	SessionID *uuid.UUID

	// Role is the account role carried at issue time. Authorization
	// decisions still go through the enforcer; this is for request
	// context and logging.
	Role string

	Issuer   string
	Audience string

	IssuedAt  time.Time
	NotBefore time.Time
	ExpiresAt time.Time
	TokenID   string // jti
	Subject   string
}

// GetUserID implements authorize.ClaimsProvider.
func (c *Claims) GetUserID() uuid.UUID {
	return c.UserID
}

func (c *Claims) GetSessionID() *uuid.UUID {
	return c.SessionID
}

func (c *Claims) GetTokenType() string {
	return string(c.Type)
}

func (c *Claims) IsExpired() bool {
	return time.Now().After(c.ExpiresAt)
}
