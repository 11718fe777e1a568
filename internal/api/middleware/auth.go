package middleware

import (
	"net/http"

	"github.com/alexedwards/scs/v2"
)

// Session keys set by the OAuth callback.
const (
	SessionKeyAuthenticated = "authenticated"
	SessionKeyLogin         = "login"
	SessionKeyName          = "name"
)

// RequireSession gates mutating routes behind an authenticated session.
// Unauthenticated callers get a 401 with the literal body "Unauthorized"
// and the downstream handler never runs. The body is plain text, not the
// JSON error shape; clients assert on the exact string.
func RequireSession(sessions *scs.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if sessions == nil || !sessions.GetBool(r.Context(), SessionKeyAuthenticated) {
				w.Header().Set("Content-Type", "text/plain; charset=utf-8")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte("Unauthorized"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
