package forum_test

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	forum "github.com/ocastellar/go-forum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicProjectionOmitsSecrets(t *testing.T) {
	token := "goog-token"
	user := &forum.User{
		ID:           uuid.New(),
		Name:         "Ada",
		Email:        "ada@example.com",
		PasswordHash: "$2a$12$notarealhash",
		AccessToken:  &token,
	}

	raw, err := json.Marshal(user.Public())
	require.NoError(t, err)

	decoded := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, user.ID.String(), decoded["id"])
	assert.Equal(t, "Ada", decoded["name"])
	assert.Equal(t, "ada@example.com", decoded["email"])
	assert.NotContains(t, decoded, "password_hash")
	assert.NotContains(t, decoded, "access_token")
}

func TestUserJSONHidesCredentialFields(t *testing.T) {
	token := "goog-token"
	user := &forum.User{
		ID:           uuid.New(),
		Name:         "Ada",
		Email:        "ada@example.com",
		PasswordHash: "$2a$12$notarealhash",
		AccessToken:  &token,
	}

	raw, err := json.Marshal(user)
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "notarealhash")
	assert.NotContains(t, string(raw), "goog-token")
}
