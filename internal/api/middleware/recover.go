package middleware

import (
	"net/http"

	"github.com/rs/zerolog"
)

// Recover converts handler panics into a generic 500 so a single bad
// request cannot take the server down. The panic value is logged with the
// request-scoped logger; the client never sees it.
func Recover() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					zerolog.Ctx(r.Context()).Error().
						Interface("panic", rec).
						Str("path", r.URL.Path).
						Msg("handler panic recovered")
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
