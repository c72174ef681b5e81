package forum_test

import (
	"testing"
	"time"

	forum "github.com/ocastellar/go-forum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "super-secret")

	cfg, err := forum.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "super-secret", cfg.GetSigningKey())
	assert.Equal(t, 86400000, cfg.GetSessionTTL())
	assert.Equal(t, "t", cfg.GetCookieName())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "super-secret")
	t.Setenv("SESSION_TTL", "60000")
	t.Setenv("SESSION_COOKIE", "session")

	cfg, err := forum.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 60000, cfg.GetSessionTTL())
	assert.Equal(t, "session", cfg.GetCookieName())
}

func TestLoadConfigRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := forum.LoadConfig()
	assert.Error(t, err)
}

func TestSessionTTLIsMilliseconds(t *testing.T) {
	cfg := testConfig(60000)
	auther := forum.NewAuthenticator(new(MockCredentialStore), cfg)
	routes := forum.NewRouteAuthenticator(auther, cfg)

	assert.Equal(t, time.Minute, routes.CookieTTL())
}
