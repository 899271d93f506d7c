// Package custom aggregates the caller's user-created calendars, an event
// source fetched out-of-band from the regular timetable.
package custom

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/epiday/epiday/internal/intra"
	"github.com/epiday/epiday/internal/intra/jsonv"
	"github.com/epiday/epiday/internal/model"
)

const defaultRoom = "At the bar"

// Gateway is the subset of the portal client the calendar service uses.
type Gateway interface {
	GetAuth(ctx context.Context, cred, path string) ([]byte, error)
	GetAuthRaw(ctx context.Context, cred, path string) (int, []byte, error)
	PostAuthRaw(ctx context.Context, cred, path string) (int, []byte, error)
}

// Service lists custom calendars and fetches their per-day events.
type Service struct {
	gw  Gateway
	log zerolog.Logger
}

func NewService(gw Gateway, log zerolog.Logger) *Service {
	return &Service{gw: gw, log: log}
}

// List returns the caller's custom calendars in portal listing order.
func (s *Service) List(ctx context.Context, cred string) ([]model.Calendar, error) {
	body, err := s.gw.GetAuth(ctx, cred, "/planning/list?format=json")
	if err != nil {
		return nil, err
	}

	calendars := make([]model.Calendar, 0)

	// Same quirk as the timetable: no calendars comes back as an empty
	// object, not an empty array.
	raw, ok := jsonv.DecodeList(body)
	if !ok {
		return calendars, nil
	}

	for _, rec := range raw {
		id, ok := jsonv.Uint(rec, "id")
		if !ok {
			return nil, model.MissingField("id")
		}
		title, ok := jsonv.Str(rec, "title")
		if !ok {
			return nil, model.MissingField("title")
		}
		calendars = append(calendars, model.Calendar{ID: id, Title: title})
	}
	return calendars, nil
}

// DayEvents returns one calendar's events for the requested day as canonical
// events tagged is_custom, with the calendar's name as module. A 2xx body
// that does not parse as a list means zero events for that day, never an
// error.
func (s *Service) DayEvents(ctx context.Context, cred string, cal model.Calendar, date time.Time) ([]model.Event, error) {
	day := date.Format(intra.DateLayout)
	path := fmt.Sprintf("/planning/%d/events?format=json&start=%s&end=%s", cal.ID, day, day)

	body, err := s.gw.GetAuth(ctx, cred, path)
	if err != nil {
		return nil, err
	}

	events := make([]model.Event, 0)
	raw, ok := jsonv.DecodeList(body)
	if !ok {
		return events, nil
	}

	for _, rec := range raw {
		ev, err := normalizeCustom(rec, cal)
		if err != nil {
			return nil, err
		}
		events = append(events, *ev)
	}
	return events, nil
}

func normalizeCustom(raw map[string]interface{}, cal model.Calendar) (*model.Event, error) {
	calendarID, ok := jsonv.Uint(raw, "id_calendar")
	if !ok {
		return nil, model.MissingField("id_calendar")
	}
	eventID, ok := jsonv.Uint(raw, "id")
	if !ok {
		return nil, model.MissingField("id")
	}
	title, ok := jsonv.Str(raw, "title")
	if !ok {
		return nil, model.MissingField("title")
	}

	room := defaultRoom
	if location, ok := jsonv.Str(raw, "location"); ok {
		room = intra.FormatRoom(location)
	}

	teacher, ok := jsonv.Str(raw, "maker", "title")
	if !ok {
		return nil, model.MissingField("maker.title")
	}

	timeStart, err := displayTime(raw, "start")
	if err != nil {
		return nil, err
	}
	timeEnd, err := displayTime(raw, "end")
	if err != nil {
		return nil, err
	}

	return &model.Event{
		IsCustom:           true,
		CalendarID:         calendarID,
		EventID:            eventID,
		Title:              title,
		Module:             cal.Title,
		Room:               room,
		Teacher:            teacher,
		TimeStart:          timeStart,
		TimeEnd:            timeEnd,
		RegistrationStatus: registrationStatus(raw),
	}, nil
}

func displayTime(raw map[string]interface{}, field string) (string, error) {
	stamp, ok := jsonv.Str(raw, field)
	if !ok {
		return "", model.MissingField(field)
	}
	display, err := intra.FormatTime(stamp)
	if err != nil {
		return "", model.MalformedField(field)
	}
	return display, nil
}

// registrationStatus defaults to false when the field is absent; custom
// calendars have no implicit-true default.
func registrationStatus(raw map[string]interface{}) bool {
	if s, ok := jsonv.Str(raw, "event_registered"); ok {
		return s == "registered" || s == "present"
	}
	if b, ok := jsonv.Bool(raw, "event_registered"); ok {
		return b
	}
	return false
}

// Register subscribes the caller to one custom-calendar event.
func (s *Service) Register(ctx context.Context, cred string, calendarID, eventID uint64) error {
	path := fmt.Sprintf("/planning/%d/%d/subscribe?format=json", calendarID, eventID)
	status, _, err := s.gw.GetAuthRaw(ctx, cred, path)
	if err != nil {
		return err
	}
	if status != 200 {
		return fmt.Errorf("%w: could not register", model.ErrUpstreamRejected)
	}
	return nil
}

// Unregister removes the caller from one custom-calendar event. The portal
// encodes the reason in the status code.
func (s *Service) Unregister(ctx context.Context, cred string, calendarID, eventID uint64) error {
	path := fmt.Sprintf("/planning/%d/%d/unsubscribe?format=json", calendarID, eventID)
	status, _, err := s.gw.PostAuthRaw(ctx, cred, path)
	if err != nil {
		return err
	}
	switch status {
	case 200:
		return nil
	case 400:
		return fmt.Errorf("%w: past event", model.ErrInvalidInput)
	case 500:
		return fmt.Errorf("%w: already unregistered", model.ErrUpstreamRejected)
	default:
		return fmt.Errorf("%w: could not unregister", model.ErrUpstreamRejected)
	}
}
