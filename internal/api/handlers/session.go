package handlers

import (
	"html/template"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/rs/zerolog"

	"github.com/eventhub/server/internal/api/middleware"
	"github.com/eventhub/server/internal/auth/oauth"
	"github.com/eventhub/server/internal/metrics"
)

const (
	stateCookieName = "oauth_state"
	flashSessionKey = "flash"
)

var landingTemplate = template.Must(template.New("landing").Parse(`<!DOCTYPE html>
<html>
<head><title>Events API Hub</title></head>
<body>
<h1>Welcome to the Events API Hub</h1>
{{if .Message}}<p>{{.Message}}</p>{{end}}
{{if .Authenticated}}
<p>Logged in as {{.Login}}</p>
<p><a href="/users">View All Users</a> | <a href="/tickets">View All Tickets</a> | <a href="/events">View All Events</a> | <a href="/speakers">View All Speakers</a> | <a href="/venues">View All Venues</a></p>
<p><a href="/auth/logout">Logout</a></p>
{{else}}
<p><a href="/auth/github">Login with GitHub</a></p>
{{end}}
</body>
</html>
`))

// SessionHandler implements the browser-facing login flow: the landing
// page, the GitHub OAuth redirect and callback, and logout.
type SessionHandler struct {
	Sessions *scs.SessionManager
	GitHub   *oauth.GitHubClient
	Logger   zerolog.Logger
	Env      string
}

func NewSessionHandler(sessions *scs.SessionManager, github *oauth.GitHubClient, logger zerolog.Logger, env string) *SessionHandler {
	return &SessionHandler{
		Sessions: sessions,
		GitHub:   github,
		Logger:   logger.With().Str("handler", "session").Logger(),
		Env:      env,
	}
}

// Landing handles GET /. It shows the login state and a one-shot flash
// message left by the callback or logout handlers.
func (h *SessionHandler) Landing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data := struct {
		Message       string
		Authenticated bool
		Login         string
	}{
		Message:       h.Sessions.PopString(ctx, flashSessionKey),
		Authenticated: h.Sessions.GetBool(ctx, middleware.SessionKeyAuthenticated),
		Login:         h.Sessions.GetString(ctx, middleware.SessionKeyLogin),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := landingTemplate.Execute(w, data); err != nil {
		h.Logger.Error().Err(err).Msg("failed to render landing page")
	}
}

// GitHubLogin handles GET /auth/github. It sets a short-lived state
// cookie for CSRF protection and redirects to GitHub.
func (h *SessionHandler) GitHubLogin(w http.ResponseWriter, r *http.Request) {
	state, err := oauth.GenerateState()
	if err != nil {
		h.Logger.Error().Err(err).Msg("failed to generate oauth state")
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		Secure:   h.Env == "production",
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, h.GitHub.GenerateAuthURL(state), http.StatusFound)
}

// GitHubCallback handles GET /auth/github/callback. A failure at any step
// redirects back to the landing page without a session, mirroring the
// login flow's failure redirect.
func (h *SessionHandler) GitHubCallback(w http.ResponseWriter, r *http.Request) {
	stateCookie, err := r.Cookie(stateCookieName)
	if err != nil {
		h.Logger.Warn().Msg("oauth state cookie missing")
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	stateParam := r.URL.Query().Get("state")
	if stateParam == "" || stateParam != stateCookie.Value {
		h.Logger.Warn().Msg("oauth state mismatch")
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	// The state cookie is single use
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.Env == "production",
		SameSite: http.SameSiteLaxMode,
	})

	if errParam := r.URL.Query().Get("error"); errParam != "" {
		h.Logger.Warn().Str("error", errParam).Msg("github oauth error")
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		h.Logger.Warn().Msg("oauth code parameter missing")
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	accessToken, err := h.GitHub.ExchangeCode(r.Context(), code)
	if err != nil {
		h.Logger.Error().Err(err).Msg("failed to exchange oauth code")
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	githubUser, err := h.GitHub.FetchUserProfile(r.Context(), accessToken)
	if err != nil {
		h.Logger.Error().Err(err).Msg("failed to fetch github user profile")
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	ctx := r.Context()

	// Session fixation protection: rotate the token before elevating
	if err := h.Sessions.RenewToken(ctx); err != nil {
		h.Logger.Error().Err(err).Msg("failed to renew session token")
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	h.Sessions.Put(ctx, middleware.SessionKeyAuthenticated, true)
	h.Sessions.Put(ctx, middleware.SessionKeyLogin, githubUser.Login)
	h.Sessions.Put(ctx, middleware.SessionKeyName, githubUser.Name)
	h.Sessions.Put(ctx, flashSessionKey, "You are logged in")

	metrics.SessionsStarted.Inc()
	h.Logger.Info().Str("login", githubUser.Login).Msg("session established")

	http.Redirect(w, r, "/", http.StatusFound)
}

// Logout handles GET /auth/logout.
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	wasAuthenticated := h.Sessions.GetBool(ctx, middleware.SessionKeyAuthenticated)

	if err := h.Sessions.Destroy(ctx); err != nil {
		h.Logger.Error().Err(err).Msg("failed to destroy session")
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	h.Sessions.Put(ctx, flashSessionKey, "You are logged out")

	if wasAuthenticated {
		metrics.SessionsEnded.Inc()
	}

	http.Redirect(w, r, "/", http.StatusFound)
}
