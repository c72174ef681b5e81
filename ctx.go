package forum

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// Locals keys populated by the middleware chain. RequireSignin stores the
// authenticated principal under AuthKey; resource loaders store the owner
// identifier under ProfileKey before HasAuthorization runs.
const (
	AuthKey    = "auth"
	ProfileKey = "profile"
)

var principalCtxKey = &contextKey{"principal"}

type contextKey struct {
	name string
}

// WithPrincipal sets the session principal in the given context
func WithPrincipal(r context.Context, session Session) context.Context {
	return context.WithValue(r, principalCtxKey, session)
}

// PrincipalFrom finds the session principal in the context.
func PrincipalFrom(ctx context.Context) (Session, bool) {
	raw, ok := ctx.Value(principalCtxKey).(Session)
	return raw, ok
}

// PrincipalFromLocals extracts the principal RequireSignin stored on the
// request.
func PrincipalFromLocals(c *fiber.Ctx) (Session, bool) {
	raw := c.Locals(AuthKey)
	if raw == nil {
		return nil, false
	}
	session, ok := raw.(Session)
	return session, ok
}

// SetProfileOwner records the owner of the requested resource for the
// authorization gate.
func SetProfileOwner(c *fiber.Ctx, ownerID string) {
	c.Locals(ProfileKey, ownerID)
}

// ProfileOwnerFromLocals returns the resource owner a loader stored on the
// request.
func ProfileOwnerFromLocals(c *fiber.Ctx) (string, bool) {
	raw := c.Locals(ProfileKey)
	if raw == nil {
		return "", false
	}
	owner, ok := raw.(string)
	return owner, ok
}
