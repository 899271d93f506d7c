package api

import (
	"context"
	"net/http"

	"github.com/epiday/epiday/internal/api/respond"
)

// Prober checks upstream reachability without authentication.
type Prober interface {
	Probe(ctx context.Context, path string) (int, error)
}

type HealthHandler struct {
	prober Prober
}

func NewHealthHandler(prober Prober) *HealthHandler {
	return &HealthHandler{prober: prober}
}

// API is a static liveness check for the gateway itself.
func (h *HealthHandler) API(w http.ResponseWriter, r *http.Request) {
	respond.WriteMsg(w, http.StatusOK, "2epi2day4you")
}

// Intra probes the portal anonymously. A 403 means the portal is up: it
// answers, it just refuses anonymous callers.
func (h *HealthHandler) Intra(w http.ResponseWriter, r *http.Request) {
	status, err := h.prober.Probe(r.Context(), "/?format=json")
	if err != nil {
		respond.WriteMsg(w, http.StatusServiceUnavailable, "error")
		return
	}
	if status == http.StatusForbidden {
		respond.WriteMsg(w, http.StatusOK, "okay")
		return
	}
	respond.WriteMsg(w, http.StatusInternalServerError, "down")
}
