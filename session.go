package forum

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

var _ Session = &SessionObject{}

// SessionObject is the per-request principal decoded from a session token
type SessionObject struct {
	UserID   string     `json:"user_id,omitempty"`
	Issuer   string     `json:"issuer,omitempty"`
	IssuedAt *time.Time `json:"issued_at,omitempty"`
}

func (s *SessionObject) GetUserID() string {
	return s.UserID
}

func (s *SessionObject) GetUserUUID() (uuid.UUID, error) {
	return uuid.Parse(s.UserID)
}

func (s *SessionObject) GetIssuer() string {
	return s.Issuer
}

func (s *SessionObject) GetIssuedAt() *time.Time {
	return s.IssuedAt
}

func (s SessionObject) String() string {
	issuedAt := "<nil>"
	if s.IssuedAt != nil {
		issuedAt = s.IssuedAt.Format(time.RFC1123)
	}
	return fmt.Sprintf("user=%s iss=%s iat=%s", s.UserID, s.Issuer, issuedAt)
}

// sessionFromClaims creates a SessionObject from validated token claims
func sessionFromClaims(claims *SessionClaims) (*SessionObject, error) {
	if claims == nil {
		return nil, ErrTokenMalformed
	}

	issuedAt := claims.IssuedAt()

	return &SessionObject{
		UserID:   claims.UserID(),
		Issuer:   claims.RegisteredClaims.Issuer,
		IssuedAt: &issuedAt,
	}, nil
}
