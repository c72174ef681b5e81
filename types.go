package forum

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Error(format string, args ...any)
}

// Session holds the attributes decoded from a session token
type Session interface {
	GetUserID() string
	GetUserUUID() (uuid.UUID, error)
}

// Authenticator holds methods to deal with authentication
type Authenticator interface {
	SignIn(ctx context.Context, email, password string) (string, *User, error)
	SessionFromToken(token string) (Session, error)
	IdentityFromSession(ctx context.Context, session Session) (*User, error)
	RevokeAccessToken(ctx context.Context, accessToken string) (*User, error)
}

// TokenService signs and validates session tokens
type TokenService interface {
	Sign(userID string) (string, error)
	Validate(tokenString string) (*SessionClaims, error)
}

// Config holds auth options
type Config interface {
	GetSigningKey() string
	GetSessionTTL() int
	GetCookieName() string
	GetTokenLookup() string
}

// CredentialStore is the persistence boundary the identity layer consumes.
// Everything else about users (registration, profile edits) lives behind the
// repositories and never enters the authentication path.
type CredentialStore interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByAccessToken(ctx context.Context, accessToken string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	ClearAccessToken(ctx context.Context, accessToken string) (*User, error)
}

// PasswordAuthenticator authenticates passwords
type PasswordAuthenticator interface {
	HashPassword(password string) (string, error)
	ComparePasswordAndHash(password, hash string) error
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] FORUM "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] FORUM "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] FORUM "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}
