// Package api assembles the HTTP surface: routing, middleware order, and
// the write-gate policy.
package api

import (
	"context"
	"net/http"
	"sort"
	"strings"

	"github.com/alexedwards/scs/v2"
	"github.com/rs/zerolog"

	"github.com/eventhub/server/internal/api/handlers"
	"github.com/eventhub/server/internal/api/middleware"
	"github.com/eventhub/server/internal/auth/oauth"
	"github.com/eventhub/server/internal/config"
	"github.com/eventhub/server/internal/domain/events"
	"github.com/eventhub/server/internal/domain/speakers"
	"github.com/eventhub/server/internal/domain/tickets"
	"github.com/eventhub/server/internal/domain/users"
	"github.com/eventhub/server/internal/domain/venues"
	"github.com/eventhub/server/internal/metrics"
)

// Store is the repository aggregate the router is wired over. Satisfied
// by the MongoDB storage layer; tests inject stubs.
type Store interface {
	Ping(ctx context.Context) error
	Users() users.Repository
	Events() events.Repository
	Tickets() tickets.Repository
	Speakers() speakers.Repository
	Venues() venues.Repository
}

// resourceHandlers is the uniform handler set every resource exposes.
type resourceHandlers struct {
	list   http.HandlerFunc
	get    http.HandlerFunc
	create http.HandlerFunc
	update http.HandlerFunc
	delete http.HandlerFunc
}

// NewRouter wires handlers, middleware, and routes over an already
// connected store. The caller owns the lifecycle of the store and the
// rate limiter.
func NewRouter(cfg config.Config, logger zerolog.Logger, store Store, sessions *scs.SessionManager, github *oauth.GitHubClient, limiter *middleware.RateLimiter) http.Handler {
	usersHandler := handlers.NewUsersHandler(users.NewService(store.Users()))
	eventsHandler := handlers.NewEventsHandler(events.NewService(store.Events()))
	ticketsHandler := handlers.NewTicketsHandler(tickets.NewService(store.Tickets()))
	speakersHandler := handlers.NewSpeakersHandler(speakers.NewService(store.Speakers()))
	venuesHandler := handlers.NewVenuesHandler(venues.NewService(store.Venues()))

	sessionHandler := handlers.NewSessionHandler(sessions, github, logger, cfg.Environment)
	healthHandler := handlers.NewHealthHandler(store, cfg.Version)

	requireSession := middleware.RequireSession(sessions)
	publicTier := limiter.Limit(middleware.TierPublic)
	writeTier := limiter.Limit(middleware.TierWrite)
	loginTier := limiter.Limit(middleware.TierLogin)

	mux := http.NewServeMux()

	mux.Handle("GET /{$}", publicTier(http.HandlerFunc(sessionHandler.Landing)))
	mux.Handle("GET /auth/github", loginTier(http.HandlerFunc(sessionHandler.GitHubLogin)))
	mux.Handle("GET /auth/github/callback", loginTier(http.HandlerFunc(sessionHandler.GitHubCallback)))
	mux.Handle("GET /auth/logout", publicTier(http.HandlerFunc(sessionHandler.Logout)))

	// Health probes stay unlimited so orchestration never sees a 429.
	mux.Handle("/healthz", http.HandlerFunc(healthHandler.Healthz))
	mux.Handle("/readyz", http.HandlerFunc(healthHandler.Readyz))
	mux.Handle("/metrics", publicTier(metrics.Handler()))

	resources := map[string]resourceHandlers{
		"users":    {usersHandler.List, usersHandler.Get, usersHandler.Create, usersHandler.Update, usersHandler.Delete},
		"events":   {eventsHandler.List, eventsHandler.Get, eventsHandler.Create, eventsHandler.Update, eventsHandler.Delete},
		"tickets":  {ticketsHandler.List, ticketsHandler.Get, ticketsHandler.Create, ticketsHandler.Update, ticketsHandler.Delete},
		"speakers": {speakersHandler.List, speakersHandler.Get, speakersHandler.Create, speakersHandler.Update, speakersHandler.Delete},
		"venues":   {venuesHandler.List, venuesHandler.Get, venuesHandler.Create, venuesHandler.Update, venuesHandler.Delete},
	}

	for name, h := range resources {
		gate := func(next http.Handler) http.Handler { return next }
		if writePolicy[name] {
			gate = requireSession
		}

		mux.Handle("/"+name, methodMux(map[string]http.Handler{
			http.MethodGet:  publicTier(h.list),
			http.MethodPost: gate(writeTier(h.create)),
		}))
		mux.Handle("/"+name+"/{id}", methodMux(map[string]http.Handler{
			http.MethodGet:    publicTier(h.get),
			http.MethodPut:    gate(writeTier(h.update)),
			http.MethodDelete: gate(writeTier(h.delete)),
		}))
	}

	var handler http.Handler = mux
	handler = sessions.LoadAndSave(handler)
	handler = metrics.HTTPMiddleware(handler)
	handler = middleware.CORS(cfg.CORS, logger)(handler)
	handler = middleware.Recover()(handler)
	handler = middleware.RequestLogging(logger)(handler)
	handler = middleware.CorrelationID(logger)(handler)
	return handler
}

func methodMux(muxHandlers map[string]http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if handler, ok := muxHandlers[r.Method]; ok {
			handler.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Allow", allowedMethods(muxHandlers))
		w.WriteHeader(http.StatusMethodNotAllowed)
	})
}

func allowedMethods(muxHandlers map[string]http.Handler) string {
	methods := make([]string, 0, len(muxHandlers))
	for method := range muxHandlers {
		methods = append(methods, method)
	}
	sort.Strings(methods)
	return strings.Join(methods, ", ")
}
