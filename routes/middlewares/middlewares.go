package middlewares

import (
	"net/http"

	"github.com/go-chi/oauth"
)

// Authenticated verifies the bearer token on API routes. The resolved
// credential lands in the request context for Username to pick up.
func Authenticated(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return oauth.Authorize(secret, nil)(next)
	}
}

// Username returns the username the token was issued to, or the empty
// string outside an authenticated context.
func Username(r *http.Request) string {
	if credential, ok := r.Context().Value(oauth.CredentialContext).(string); ok {
		return credential
	}
	return ""
}
