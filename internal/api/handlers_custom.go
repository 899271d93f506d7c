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
	"github.com/epiday/epiday/internal/model"
)

// CustomService is the custom-calendar core as seen from the HTTP layer.
type CustomService interface {
	List(ctx context.Context, cred string) ([]model.Calendar, error)
	DayEvents(ctx context.Context, cred string, cal model.Calendar, date time.Time) ([]model.Event, error)
	Register(ctx context.Context, cred string, calendarID, eventID uint64) error
	Unregister(ctx context.Context, cred string, calendarID, eventID uint64) error
}

type CustomHandler struct {
	svc CustomService
	log zerolog.Logger
}

func NewCustomHandler(svc CustomService, log zerolog.Logger) *CustomHandler {
	return &CustomHandler{svc: svc, log: log}
}

// List returns the caller's custom calendars.
func (h *CustomHandler) List(w http.ResponseWriter, r *http.Request) {
	cred, ok := credential(w, r)
	if !ok {
		return
	}

	calendars, err := h.svc.List(r.Context(), cred)
	if err != nil {
		h.log.Error().Err(err).Msg("calendar listing failed")
		writeErr(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, calendars)
}

// Day returns one custom calendar's events for the requested day.
func (h *CustomHandler) Day(w http.ResponseWriter, r *http.Request) {
	cred, ok := credential(w, r)
	if !ok {
		return
	}

	var in struct {
		Date       string `json:"date"`
		CalendarID uint64 `json:"calendar_id"`
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

	// Listing first resolves the calendar's display name and confirms the
	// caller actually owns it.
	calendars, err := h.svc.List(r.Context(), cred)
	if err != nil {
		h.log.Error().Err(err).Msg("calendar listing failed")
		writeErr(w, err)
		return
	}
	var cal *model.Calendar
	for i := range calendars {
		if calendars[i].ID == in.CalendarID {
			cal = &calendars[i]
			break
		}
	}
	if cal == nil {
		respond.WriteMsg(w, http.StatusBadRequest, "unknown calendar")
		return
	}

	events, err := h.svc.DayEvents(r.Context(), cred, *cal, date)
	if err != nil {
		h.log.Error().Err(err).Uint64("calendar", in.CalendarID).Msg("custom day failed")
		writeErr(w, err)
		return
	}
	respond.WriteJSON(w, http.StatusOK, events)
}

// Register subscribes the caller to a custom-calendar event.
func (h *CustomHandler) Register(w http.ResponseWriter, r *http.Request) {
	cred, ok := credential(w, r)
	if !ok {
		return
	}

	var in struct {
		CalendarID uint64 `json:"calendar_id"`
		EventID    uint64 `json:"event_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteMsg(w, http.StatusBadRequest, "invalid json")
		return
	}

	if err := h.svc.Register(r.Context(), cred, in.CalendarID, in.EventID); err != nil {
		if errors.Is(err, model.ErrUpstreamRejected) {
			// the portal refuses subscriptions to calendars the caller
			// cannot see
			respond.WriteMsg(w, http.StatusForbidden, "could not register")
			return
		}
		writeErr(w, err)
		return
	}
	respond.WriteMsg(w, http.StatusOK, "registered")
}

// Unregister removes the caller from a custom-calendar event.
func (h *CustomHandler) Unregister(w http.ResponseWriter, r *http.Request) {
	cred, ok := credential(w, r)
	if !ok {
		return
	}

	var in struct {
		CalendarID uint64 `json:"calendar_id"`
		EventID    uint64 `json:"event_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteMsg(w, http.StatusBadRequest, "invalid json")
		return
	}

	if err := h.svc.Unregister(r.Context(), cred, in.CalendarID, in.EventID); err != nil {
		writeErr(w, err)
		return
	}
	respond.WriteMsg(w, http.StatusOK, "unregistered")
}
