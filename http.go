package forum

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// RouteAuthenticator couples an Authenticator to the cookie carrier. It owns
// every Set-Cookie the identity layer ever emits.
type RouteAuthenticator struct {
	auth        Authenticator
	cookieName  string
	cookieTTL   time.Duration
	tokenLookup string
	Logger      Logger
}

// NewRouteAuthenticator builds the HTTP glue for the given authenticator.
// SessionTTL is configured in milliseconds to stay wire-compatible with the
// deployments this service replaces.
func NewRouteAuthenticator(auther Authenticator, cfg Config) *RouteAuthenticator {
	cookieTTL := 24 * time.Hour
	if cfg.GetSessionTTL() > 0 {
		cookieTTL = time.Duration(cfg.GetSessionTTL()) * time.Millisecond
	}

	cookieName := cfg.GetCookieName()
	if cookieName == "" {
		cookieName = DefaultCookieName
	}

	tokenLookup := cfg.GetTokenLookup()
	if tokenLookup == "" {
		tokenLookup = "cookie:" + cookieName + ",query:token,param:token"
	}

	return &RouteAuthenticator{
		auth:        auther,
		cookieName:  cookieName,
		cookieTTL:   cookieTTL,
		tokenLookup: tokenLookup,
		Logger:      defLogger{},
	}
}

// DefaultCookieName is the cookie carrying the session token.
const DefaultCookieName = "t"

func (a *RouteAuthenticator) CookieName() string {
	return a.cookieName
}

func (a *RouteAuthenticator) CookieTTL() time.Duration {
	return a.cookieTTL
}

// SignIn authenticates the payload and, on success, attaches the session
// token to the response cookie. The token is returned so the handler can echo
// it in the body alongside the public user projection.
func (a *RouteAuthenticator) SignIn(c *fiber.Ctx, email, password string) (string, *User, error) {
	token, user, err := a.auth.SignIn(c.UserContext(), email, password)
	if err != nil {
		a.Logger.Error("sign in error: %s", err)
		return "", nil, err
	}

	a.setCookieToken(c, token)
	return token, user, nil
}

// SignOut clears the session cookie. When accessToken names a third-party
// token the stored copy is revoked first; a failed or empty revocation still
// signs the client out, the cookie clear never depends on the store.
func (a *RouteAuthenticator) SignOut(c *fiber.Ctx, accessToken string) *User {
	var user *User

	if accessToken != "" {
		var err error
		if user, err = a.auth.RevokeAccessToken(c.UserContext(), accessToken); err != nil {
			a.Logger.Error("error revoking access token during sign out: %s", err)
		}
	}

	a.cookieDel(c)
	return user
}

func (a *RouteAuthenticator) setCookieToken(c *fiber.Ctx, val string) {
	// HTTPOnly is intentionally false: the frontend reads the cookie to
	// bootstrap its local session state.
	c.Cookie(&fiber.Cookie{
		Name:     a.cookieName,
		Value:    val,
		Expires:  time.Now().Add(a.cookieTTL),
		HTTPOnly: false,
		SameSite: "Lax",
	})
}

func (a *RouteAuthenticator) cookieDel(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     a.cookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour * (24 * 365)),
		HTTPOnly: false,
		SameSite: "Lax",
	})
}
