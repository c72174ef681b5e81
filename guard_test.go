package forum_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	forum "github.com/ocastellar/go-forum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authzApp(principal, owner string) (*fiber.App, *bool) {
	app := fiber.New()
	reached := false

	app.Get("/guarded", func(c *fiber.Ctx) error {
		if principal != "" {
			c.Locals(forum.AuthKey, &forum.SessionObject{UserID: principal})
		}
		if owner != "" {
			forum.SetProfileOwner(c, owner)
		}
		return c.Next()
	}, forum.HasAuthorization(), func(c *fiber.Ctx) error {
		reached = true
		return c.SendString("ok")
	})

	return app, &reached
}

func TestHasAuthorizationMatrix(t *testing.T) {
	tests := []struct {
		name      string
		principal string
		owner     string
		status    int
		allowed   bool
	}{
		{
			name:      "both present and equal",
			principal: "u1",
			owner:     "u1",
			status:    http.StatusOK,
			allowed:   true,
		},
		{
			name:      "both present but unequal",
			principal: "u2",
			owner:     "u1",
			status:    http.StatusForbidden,
			allowed:   false,
		},
		{
			name:      "principal missing",
			principal: "",
			owner:     "u1",
			status:    http.StatusForbidden,
			allowed:   false,
		},
		{
			name:      "owner missing",
			principal: "u1",
			owner:     "",
			status:    http.StatusForbidden,
			allowed:   false,
		},
		{
			name:      "both missing",
			principal: "",
			owner:     "",
			status:    http.StatusForbidden,
			allowed:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, reached := authzApp(tt.principal, tt.owner)

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/guarded", nil))
			require.NoError(t, err)

			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.allowed, *reached)
		})
	}
}

func TestHasAuthorizationNormalizesIdentifiers(t *testing.T) {
	// identifiers may arrive in differing representations
	app, reached := authzApp("8A2F0B3E-92C4-4A6E-9D5F-0C1B2A3D4E5F", " 8a2f0b3e-92c4-4a6e-9d5f-0c1b2a3d4e5f ")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/guarded", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, *reached)
}

func signinApp(t *testing.T) (*fiber.App, *forum.RouteAuthenticator, *bool) {
	t.Helper()

	store := new(MockCredentialStore)
	auther := forum.NewAuthenticator(store, testConfig(60000))
	routes := forum.NewRouteAuthenticator(auther, testConfig(60000))

	app := fiber.New()
	reached := false

	app.Get("/private", routes.RequireSignin(), func(c *fiber.Ctx) error {
		reached = true
		principal, ok := forum.PrincipalFromLocals(c)
		if !ok {
			return c.SendStatus(http.StatusInternalServerError)
		}
		return c.SendString(principal.GetUserID())
	})

	return app, routes, &reached
}

func TestRequireSigninAcceptsIssuedToken(t *testing.T) {
	app, routes, reached := signinApp(t)

	ts := forum.NewTokenService([]byte(testConfig(0).GetSigningKey()), "", nil)
	token, err := ts.Sign("u1")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(&http.Cookie{Name: routes.CookieName(), Value: token})

	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, *reached)
}

func TestRequireSigninRejectsMissingToken(t *testing.T) {
	app, _, reached := signinApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/private", nil))
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.False(t, *reached)
}

func TestRequireSigninRejectsTamperedToken(t *testing.T) {
	app, routes, reached := signinApp(t)

	ts := forum.NewTokenService([]byte(testConfig(0).GetSigningKey()), "", nil)
	token, err := ts.Sign("u1")
	require.NoError(t, err)

	raw := []byte(token)
	last := len(raw) - 1
	if raw[last] == 'A' {
		raw[last] = 'B'
	} else {
		raw[last] = 'A'
	}

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(&http.Cookie{Name: routes.CookieName(), Value: string(raw)})

	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.False(t, *reached)
}

func TestRequireSigninHonorsConfiguredLookup(t *testing.T) {
	cfg := &forum.EnvConfig{
		SigningKey:  "test-signing-secret",
		SessionTTL:  60000,
		CookieName:  "t",
		TokenLookup: "header:Authorization",
	}

	auther := forum.NewAuthenticator(new(MockCredentialStore), cfg)
	routes := forum.NewRouteAuthenticator(auther, cfg)

	app := fiber.New()
	app.Get("/private", routes.RequireSignin(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	ts := forum.NewTokenService([]byte(cfg.GetSigningKey()), "", nil)
	token, err := ts.Sign("u1")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// the configured lookup replaces the cookie carrier entirely
	req = httptest.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(&http.Cookie{Name: "t", Value: token})

	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRequireSigninAcceptsQueryToken(t *testing.T) {
	app, _, reached := signinApp(t)

	ts := forum.NewTokenService([]byte(testConfig(0).GetSigningKey()), "", nil)
	token, err := ts.Sign("u1")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/private?token="+token, nil)

	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, *reached)
}
