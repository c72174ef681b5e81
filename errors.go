package forum

import (
	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
)

const (
	TextCodeCredentialsRejected = "credentials_rejected"
	TextCodeTokenMalformed      = "token_malformed"
	TextCodeSessionMissing      = "session_missing"
	TextCodeNotAuthorized       = "not_authorized"
	TextCodeIdentityGone        = "identity_gone"
)

// ErrIdentityNotFound is returned when no account matches the sign-in email.
// The message deliberately differs from ErrMismatchedHashAndPassword to match
// the behavior clients already depend on, even though both answer 401; both
// share a text code so a deployment can unify the copy in one place.
var ErrIdentityNotFound = errors.New("no user exists with that email", errors.CategoryAuth).
	WithTextCode(TextCodeCredentialsRejected).
	WithCode(errors.CodeUnauthorized)

// ErrMismatchedHashAndPassword is returned when the password does not match.
var ErrMismatchedHashAndPassword = errors.New("email and password don't match", errors.CategoryAuth).
	WithTextCode(TextCodeCredentialsRejected).
	WithCode(errors.CodeUnauthorized)

// ErrTokenMalformed is returned for tokens that fail the signature or
// structure checks.
var ErrTokenMalformed = errors.New("invalid session token", errors.CategoryAuth).
	WithTextCode(TextCodeTokenMalformed).
	WithCode(errors.CodeUnauthorized)

// ErrUnableToFindSession is returned when a request carries no token at all.
var ErrUnableToFindSession = errors.New("sign in required", errors.CategoryAuth).
	WithTextCode(TextCodeSessionMissing).
	WithCode(errors.CodeUnauthorized)

// ErrNotAuthorized is returned when the authenticated principal does not own
// the requested resource.
var ErrNotAuthorized = errors.New("you are not authorized to access this information", errors.CategoryAuthz).
	WithTextCode(TextCodeNotAuthorized).
	WithCode(errors.CodeForbidden)

// ErrIdentityGone is returned when a valid token resolves to an account that
// no longer exists. Callers must treat this as 404, not as an auth failure.
var ErrIdentityGone = errors.New("user not found", errors.CategoryNotFound).
	WithTextCode(TextCodeIdentityGone).
	WithCode(errors.CodeNotFound)

// ErrNoEmptyString rejects empty passwords before they reach bcrypt.
var ErrNoEmptyString = errors.New("value must not be empty", errors.CategoryBadInput).
	WithCode(errors.CodeBadRequest)

// IsRecordNotFound reports whether err represents a missing record. The
// repository layer raises its own not-found category, so checking the
// generic category alone misclassifies real store misses.
func IsRecordNotFound(err error) bool {
	if err == nil {
		return false
	}
	return errors.IsNotFound(err) || repository.IsRecordNotFound(err)
}
