package api

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/epiday/epiday/internal/api/respond"
	"github.com/epiday/epiday/internal/model"
)

// UserService is the profile core as seen from the HTTP layer.
type UserService interface {
	Info(ctx context.Context, cred string) (*model.User, error)
}

type UserHandler struct {
	svc UserService
	log zerolog.Logger
}

func NewUserHandler(svc UserService, log zerolog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: log}
}

// Info returns the caller's portal profile.
func (h *UserHandler) Info(w http.ResponseWriter, r *http.Request) {
	cred, ok := credential(w, r)
	if !ok {
		return
	}

	u, err := h.svc.Info(r.Context(), cred)
	if err != nil {
		h.log.Error().Err(err).Msg("user info failed")
		writeErr(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, u)
}
