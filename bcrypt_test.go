package forum_test

import (
	"testing"

	forum "github.com/ocastellar/go-forum"
	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{
			name:     "valid password",
			password: "correct horse battery staple",
			wantErr:  false,
		},
		{
			name:     "empty password",
			password: "",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := forum.HashPassword(tt.password)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, hash)

			err = forum.ComparePasswordAndHash(tt.password, hash)
			assert.NoError(t, err)
		})
	}
}

func TestComparePasswordAndHash(t *testing.T) {
	password := "correct"
	hash, err := forum.HashPassword(password)
	assert.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		wantErr  bool
	}{
		{
			name:     "matching password",
			password: password,
			hash:     hash,
			wantErr:  false,
		},
		{
			name:     "wrong password",
			password: "incorrect",
			hash:     hash,
			wantErr:  true,
		},
		{
			name:     "invalid hash",
			password: password,
			hash:     "not-a-bcrypt-hash",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := forum.ComparePasswordAndHash(tt.password, tt.hash)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestComparePasswordAndHashMismatchError(t *testing.T) {
	hash, err := forum.HashPassword("correct")
	assert.NoError(t, err)

	err = forum.ComparePasswordAndHash("incorrect", hash)
	assert.ErrorIs(t, err, forum.ErrMismatchedHashAndPassword)
}

func TestRandomPasswordHash(t *testing.T) {
	h1 := forum.RandomPasswordHash()
	h2 := forum.RandomPasswordHash()

	assert.NotEmpty(t, h1)
	assert.NotEmpty(t, h2)
	assert.NotEqual(t, h1, h2)
}
