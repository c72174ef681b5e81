package forum

import (
	"context"

	"github.com/goliatone/go-errors"
)

// Auther implements Authenticator on top of a CredentialStore.
type Auther struct {
	store        CredentialStore
	tokenService TokenService
	logger       Logger
}

// NewAuthenticator returns a new Authenticator
func NewAuthenticator(store CredentialStore, cfg Config) *Auther {
	return &Auther{
		store:        store,
		tokenService: NewTokenService([]byte(cfg.GetSigningKey()), "", defLogger{}),
		logger:       defLogger{},
	}
}

func (s *Auther) WithLogger(logger Logger) *Auther {
	s.logger = logger
	return s
}

// WithTokenService overrides the token codec, mostly useful in tests.
func (s *Auther) WithTokenService(ts TokenService) *Auther {
	s.tokenService = ts
	return s
}

// TokenService returns the token codec used by this Authenticator
func (s *Auther) TokenService() TokenService {
	return s.tokenService
}

// SignIn verifies the email/password pair and issues a session token over the
// account identifier. The returned user is the full record; callers must
// project it before it reaches a response.
func (s *Auther) SignIn(ctx context.Context, email, password string) (string, *User, error) {
	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if IsRecordNotFound(err) {
			return "", nil, ErrIdentityNotFound
		}
		return "", nil, errors.Wrap(err, errors.CategoryInternal, "failed to retrieve user during sign in")
	}

	if user == nil {
		return "", nil, ErrIdentityNotFound
	}

	if err := ComparePasswordAndHash(password, user.PasswordHash); err != nil {
		s.logger.Debug("sign in rejected for %s", email)
		return "", nil, ErrMismatchedHashAndPassword
	}

	token, err := s.tokenService.Sign(user.ID.String())
	if err != nil {
		s.logger.Error("sign in token issuance failed: %v", err)
		return "", nil, err
	}

	return token, user, nil
}

// SessionFromToken validates a raw token and returns the session it encodes.
func (s *Auther) SessionFromToken(raw string) (Session, error) {
	claims, err := s.tokenService.Validate(raw)
	if err != nil {
		return nil, err
	}

	return sessionFromClaims(claims)
}

// IdentityFromSession resolves the principal back into a user record. A valid
// token whose subject no longer exists yields ErrIdentityGone, the account
// may have been removed after the token was issued.
func (s *Auther) IdentityFromSession(ctx context.Context, session Session) (*User, error) {
	user, err := s.store.FindByID(ctx, session.GetUserID())
	if err != nil {
		if IsRecordNotFound(err) {
			return nil, ErrIdentityGone
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to resolve session identity")
	}

	if user == nil {
		return nil, ErrIdentityGone
	}

	return user, nil
}

// RevokeAccessToken clears the stored third-party access token for whichever
// account holds it. Clearing a token nobody holds is a no-op success: the
// write is idempotent and concurrent sign-outs race harmlessly to the same
// null value.
func (s *Auther) RevokeAccessToken(ctx context.Context, accessToken string) (*User, error) {
	user, err := s.store.ClearAccessToken(ctx, accessToken)
	if err != nil {
		if IsRecordNotFound(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to revoke access token")
	}

	return user, nil
}
