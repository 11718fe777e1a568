package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/eventhub/server/internal/api/respond"
)

// Pinger reports whether the backing store is reachable. Satisfied by
// the MongoDB client's Ping method via storage.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	Store   Pinger
	Version string
}

func NewHealthHandler(store Pinger, version string) *HealthHandler {
	return &HealthHandler{Store: store, Version: version}
}

// Healthz reports process liveness only; it never touches the store.
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": h.Version,
	})
}

// Readyz reports whether the server can actually serve traffic, which
// requires a reachable database.
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if h.Store != nil {
		if err := h.Store.Ping(ctx); err != nil {
			respond.JSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "unavailable",
				"reason": "database unreachable",
			})
			return
		}
	}

	respond.JSON(w, http.StatusOK, map[string]string{
		"status": "ready",
	})
}
