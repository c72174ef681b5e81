// Package forum implements the backend for a small discussion board: users
// sign in, open threads, and exchange messages. The interesting part is the
// identity layer; thread and message handlers are thin plumbing over the
// repositories.
//
// Sessions:
//   - A session is a signed JWT carrying a single uid claim. Nothing is stored
//     server side, so validating a request is a pure signature check with no
//     database round trip. The flip side is that a token cannot be revoked
//     before the client drops it short of rotating the signing secret; that
//     trade-off is accepted here rather than papered over.
//   - The token travels in a cookie named "t". The cookie expiry (SessionTTL,
//     milliseconds) is the only lifetime signal, the token itself never
//     expires. The cookie is deliberately not flagged HttpOnly to match the
//     behavior the frontend depends on; see Config.
//
// Guards:
//   - RequireSignin validates the token and stores the resulting principal in
//     request locals under "auth".
//   - HasAuthorization compares that principal against the resource owner a
//     loader middleware stored under "profile" and rejects with 403 on any
//     mismatch or absence.
//
// Third-party sign-out:
//   - Accounts created through an OAuth provider carry an access token. A
//     sign-out request naming that token nulls the stored copy. Clearing an
//     already empty field is a no-op and the endpoint always answers 200, the
//     client-side sign-out must not hinge on a server-side write.
package forum
