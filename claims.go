package forum

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the payload of a session token: a single uid claim plus
// registered bookkeeping. No expiry claim is embedded, the cookie lifetime is
// the only freshness signal in this design.
type SessionClaims struct {
	jwt.RegisteredClaims
	UID string `json:"uid,omitempty"`
}

// UserID returns the user identifier the token was issued for
func (c *SessionClaims) UserID() string {
	if c.UID != "" {
		return c.UID
	}
	return c.RegisteredClaims.Subject
}

// IssuedAt returns the issued at time
func (c *SessionClaims) IssuedAt() time.Time {
	if c.RegisteredClaims.IssuedAt != nil {
		return c.RegisteredClaims.IssuedAt.Time
	}
	return time.Time{}
}
