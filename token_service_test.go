package forum_test

import (
	"strings"
	"testing"
	"time"

	forum "github.com/ocastellar/go-forum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenServiceRoundTrip(t *testing.T) {
	ts := forum.NewTokenService([]byte("secret"), "go-forum", nil)

	token, err := ts.Sign("8a2f0b3e-92c4-4a6e-9d5f-0c1b2a3d4e5f")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ts.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "8a2f0b3e-92c4-4a6e-9d5f-0c1b2a3d4e5f", claims.UserID())
	assert.WithinDuration(t, time.Now(), claims.IssuedAt(), time.Minute)
}

func TestTokenServiceSignEmptySubject(t *testing.T) {
	ts := forum.NewTokenService([]byte("secret"), "go-forum", nil)

	_, err := ts.Sign("")
	assert.Error(t, err)
}

func TestTokenServiceNoExpiryClaim(t *testing.T) {
	ts := forum.NewTokenService([]byte("secret"), "go-forum", nil)

	token, err := ts.Sign("user-1")
	require.NoError(t, err)

	claims, err := ts.Validate(token)
	require.NoError(t, err)
	assert.Nil(t, claims.RegisteredClaims.ExpiresAt)
}

func TestTokenServiceRejectsTamperedToken(t *testing.T) {
	ts := forum.NewTokenService([]byte("secret"), "go-forum", nil)

	token, err := ts.Sign("user-1")
	require.NoError(t, err)

	// flip one byte in the signature segment
	raw := []byte(token)
	last := len(raw) - 1
	if raw[last] == 'A' {
		raw[last] = 'B'
	} else {
		raw[last] = 'A'
	}

	_, err = ts.Validate(string(raw))
	assert.Error(t, err)
}

func TestTokenServiceRejectsForeignSecret(t *testing.T) {
	issuer := forum.NewTokenService([]byte("other-process-secret"), "go-forum", nil)
	verifier := forum.NewTokenService([]byte("secret"), "go-forum", nil)

	token, err := issuer.Sign("user-1")
	require.NoError(t, err)

	_, err = verifier.Validate(token)
	assert.Error(t, err)
}

func TestTokenServiceRejectsGarbage(t *testing.T) {
	ts := forum.NewTokenService([]byte("secret"), "go-forum", nil)

	tests := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "not a token", raw: "hello world"},
		{name: "missing segments", raw: "abc.def"},
		{name: "unsigned alg header", raw: "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJ1aWQiOiJ1c2VyLTEifQ."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ts.Validate(tt.raw)
			assert.Error(t, err)
		})
	}
}

func TestTokenServiceTokenShape(t *testing.T) {
	ts := forum.NewTokenService([]byte("secret"), "go-forum", nil)

	token, err := ts.Sign("user-1")
	require.NoError(t, err)

	assert.Len(t, strings.Split(token, "."), 3)
}
