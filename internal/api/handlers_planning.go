package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/epiday/epiday/internal/api/respond"
	"github.com/epiday/epiday/internal/api/validate"
	"github.com/epiday/epiday/internal/auth"
	"github.com/epiday/epiday/internal/model"
)

// PlanningService is the day-schedule core as seen from the HTTP layer.
type PlanningService interface {
	Day(ctx context.Context, cred, email string, semester uint64, date time.Time) ([]model.Event, error)
	ResolveAppointment(ctx context.Context, cred string, coord model.Coordinate, email string) (*model.Appointment, error)
	SubmitToken(ctx context.Context, cred string, coord model.Coordinate, token string) error
	UnregisterEvent(ctx context.Context, cred string, coord model.Coordinate) error
}

type PlanningHandler struct {
	svc PlanningService
	log zerolog.Logger
}

func NewPlanningHandler(svc PlanningService, log zerolog.Logger) *PlanningHandler {
	return &PlanningHandler{svc: svc, log: log}
}

// Day returns the merged schedule for one (caller, date) pair.
func (h *PlanningHandler) Day(w http.ResponseWriter, r *http.Request) {
	cred, ok := credential(w, r)
	if !ok {
		return
	}

	var in struct {
		Date            string `json:"date"`
		CurrentSemester uint64 `json:"current_semester"`
		Email           string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteMsg(w, http.StatusBadRequest, "invalid json")
		return
	}

	date, err := validate.Date(in.Date)
	if err != nil {
		respond.WriteMsg(w, http.StatusBadRequest, "invalid date provided")
		return
	}
	if !validate.Email(in.Email) {
		respond.WriteMsg(w, http.StatusBadRequest, "field `email` is invalid")
		return
	}

	events, err := h.svc.Day(r.Context(), cred, in.Email, in.CurrentSemester, date)
	if err != nil {
		h.log.Error().Err(err).Str("date", in.Date).Msg("day aggregation failed")
		writeErr(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, events)
}

// Rdv resolves the caller's slot for one appointment activity.
func (h *PlanningHandler) Rdv(w http.ResponseWriter, r *http.Request) {
	cred, ok := credential(w, r)
	if !ok {
		return
	}

	var in struct {
		Year         uint64 `json:"year"`
		CodeModule   string `json:"code_module"`
		CodeInstance string `json:"code_instance"`
		CodeActi     string `json:"code_acti"`
		Email        string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteMsg(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validate.PlanningRdv(in.CodeModule, in.CodeInstance, in.CodeActi, in.Email); err != nil {
		respond.WriteMsg(w, http.StatusBadRequest, err.Error())
		return
	}

	coord := model.Coordinate{
		Year:         in.Year,
		CodeModule:   in.CodeModule,
		CodeInstance: in.CodeInstance,
		CodeActi:     in.CodeActi,
	}
	appt, err := h.svc.ResolveAppointment(r.Context(), cred, coord, in.Email)
	if err != nil {
		h.log.Error().Err(err).Str("acti", in.CodeActi).Msg("rdv resolution failed")
		writeErr(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, appt)
}

// SubmitToken submits a presence token for a regular event.
func (h *PlanningHandler) SubmitToken(w http.ResponseWriter, r *http.Request) {
	cred, ok := credential(w, r)
	if !ok {
		return
	}

	var in struct {
		Year         uint64 `json:"year"`
		CodeModule   string `json:"code_module"`
		CodeInstance string `json:"code_instance"`
		CodeActi     string `json:"code_acti"`
		CodeEvent    string `json:"code_event"`
		Token        string `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteMsg(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validate.PlanningEvent(in.CodeModule, in.CodeInstance, in.CodeActi, in.CodeEvent); err != nil {
		respond.WriteMsg(w, http.StatusBadRequest, err.Error())
		return
	}

	coord := model.Coordinate{
		Year:         in.Year,
		CodeModule:   in.CodeModule,
		CodeInstance: in.CodeInstance,
		CodeActi:     in.CodeActi,
		CodeEvent:    in.CodeEvent,
	}
	if err := h.svc.SubmitToken(r.Context(), cred, coord, in.Token); err != nil {
		h.log.Error().Err(err).Str("event", in.CodeEvent).Msg("token submission failed")
		writeErr(w, err)
		return
	}
	respond.WriteMsg(w, http.StatusOK, "token registered")
}

// UnregisterEvent removes the caller from a regular event.
func (h *PlanningHandler) UnregisterEvent(w http.ResponseWriter, r *http.Request) {
	cred, ok := credential(w, r)
	if !ok {
		return
	}

	var in struct {
		Year         uint64 `json:"year"`
		CodeModule   string `json:"code_module"`
		CodeInstance string `json:"code_instance"`
		CodeActi     string `json:"code_acti"`
		CodeEvent    string `json:"code_event"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteMsg(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validate.PlanningEvent(in.CodeModule, in.CodeInstance, in.CodeActi, in.CodeEvent); err != nil {
		respond.WriteMsg(w, http.StatusBadRequest, err.Error())
		return
	}

	coord := model.Coordinate{
		Year:         in.Year,
		CodeModule:   in.CodeModule,
		CodeInstance: in.CodeInstance,
		CodeActi:     in.CodeActi,
		CodeEvent:    in.CodeEvent,
	}
	if err := h.svc.UnregisterEvent(r.Context(), cred, coord); err != nil {
		h.log.Error().Err(err).Str("event", in.CodeEvent).Msg("unregister failed")
		writeErr(w, err)
		return
	}
	respond.WriteMsg(w, http.StatusOK, "unregistered")
}

// credential extracts and syntax-checks the autologin header, writing the
// 400 response itself when the check fails.
func credential(w http.ResponseWriter, r *http.Request) (string, bool) {
	cred, ok := auth.FromHeader(r)
	if !ok {
		respond.WriteMsg(w, http.StatusBadRequest, "no autologin provided")
		return "", false
	}
	if !auth.Valid(cred) {
		respond.WriteMsg(w, http.StatusBadRequest, "bad autologin provided")
		return "", false
	}
	return cred, true
}

// writeErr maps a core failure to its response. Transport-level failures keep
// the original fixed wording so monitoring can tell them from portal
// refusals.
func writeErr(w http.ResponseWriter, err error) {
	if errors.Is(err, model.ErrUpstreamUnavailable) {
		respond.WriteMsg(w, http.StatusServiceUnavailable, "client error")
		return
	}
	respond.WriteMsg(w, statusFor(err), err.Error())
}
