package forum_test

import (
	"testing"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	forum "github.com/ocastellar/go-forum"
	"github.com/stretchr/testify/assert"
)

func TestCredentialErrorsShareTextCode(t *testing.T) {
	// both rejection paths answer 401 but keep distinct copy
	assert.NotEqual(t, forum.ErrIdentityNotFound.Message, forum.ErrMismatchedHashAndPassword.Message)
	assert.Equal(t, forum.TextCodeCredentialsRejected, forum.ErrIdentityNotFound.TextCode)
	assert.Equal(t, forum.TextCodeCredentialsRejected, forum.ErrMismatchedHashAndPassword.TextCode)
	assert.Equal(t, errors.CodeUnauthorized, forum.ErrIdentityNotFound.Code)
	assert.Equal(t, errors.CodeUnauthorized, forum.ErrMismatchedHashAndPassword.Code)
}

func TestErrorCategories(t *testing.T) {
	tests := []struct {
		name     string
		err      *errors.Error
		category any
		code     int
	}{
		{"missing session", forum.ErrUnableToFindSession, errors.CategoryAuth, errors.CodeUnauthorized},
		{"malformed token", forum.ErrTokenMalformed, errors.CategoryAuth, errors.CodeUnauthorized},
		{"not authorized", forum.ErrNotAuthorized, errors.CategoryAuthz, errors.CodeForbidden},
		{"identity gone", forum.ErrIdentityGone, errors.CategoryNotFound, errors.CodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.category, tt.err.Category)
			assert.Equal(t, tt.code, tt.err.Code)
		})
	}
}

func TestIsRecordNotFound(t *testing.T) {
	assert.False(t, forum.IsRecordNotFound(nil))
	assert.False(t, forum.IsRecordNotFound(errors.New("boom", errors.CategoryInternal)))
	assert.True(t, forum.IsRecordNotFound(errors.New("gone", errors.CategoryNotFound)))
	// the repository layer raises its own not-found flavor
	assert.True(t, forum.IsRecordNotFound(repository.NewRecordNotFound()))
}
