package forum

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/ocastellar/go-forum/middleware/jwtware"
)

// sessionValidator adapts the authenticator to the middleware contract: a raw
// token in, a request principal out.
type sessionValidator struct {
	auth Authenticator
}

func (v sessionValidator) Validate(raw string) (jwtware.Claims, error) {
	session, err := v.auth.SessionFromToken(raw)
	if err != nil {
		return nil, err
	}
	return session, nil
}

// RequireSignin gates a route behind a session token that verifies under
// the current signing key. The check is purely cryptographic,
// no store lookup happens here. On success the principal lands in locals
// under AuthKey and in the request context; on failure the chain
// short-circuits with 401 and downstream handlers never run.
func (a *RouteAuthenticator) RequireSignin() fiber.Handler {
	return jwtware.New(jwtware.Config{
		ContextKey:     AuthKey,
		TokenLookup:    a.tokenLookup,
		TokenValidator: sessionValidator{auth: a.auth},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			a.Logger.Debug("require signin rejected request: %v", err)
			return RespondError(c, ErrUnableToFindSession)
		},
		ContextEnricher: func(ctx context.Context, claims jwtware.Claims) context.Context {
			if session, ok := claims.(Session); ok {
				return WithPrincipal(ctx, session)
			}
			return ctx
		},
	})
}

// HasAuthorization requires the authenticated principal to own the
// requested resource. It assumes RequireSignin already ran and that a loader
// stored the owner under ProfileKey; either one missing is a deny, never a
// pass-through.
func HasAuthorization() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, hasAuth := PrincipalFromLocals(c)
		owner, hasProfile := ProfileOwnerFromLocals(c)

		if !hasAuth || !hasProfile || !sameIdentifier(owner, principal.GetUserID()) {
			return RespondError(c, ErrNotAuthorized)
		}

		return c.Next()
	}
}

// sameIdentifier compares two identifiers that may arrive in differing
// representations (path params, uuid text, stored column values).
func sameIdentifier(a, b string) bool {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if a == "" || b == "" {
		return false
	}
	return strings.EqualFold(a, b)
}
