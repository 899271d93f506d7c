// Package planning merges the three portal event sources into one canonical,
// request-scoped day schedule: the regular timetable, appointment ("rdv")
// slots nested in timetable entries, and the caller's custom calendars.
package planning

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/epiday/epiday/internal/model"
)

// Gateway is the subset of the portal client the planning service uses.
type Gateway interface {
	GetAuth(ctx context.Context, cred, path string) ([]byte, error)
	PostAuthRaw(ctx context.Context, cred, path string) (int, []byte, error)
	PostJSONAuth(ctx context.Context, cred, path string, body interface{}) ([]byte, error)
}

// CalendarSource provides the caller's custom calendars for the day merge.
type CalendarSource interface {
	List(ctx context.Context, cred string) ([]model.Calendar, error)
	DayEvents(ctx context.Context, cred string, cal model.Calendar, date time.Time) ([]model.Event, error)
}

// Service orchestrates timetable fetches, appointment resolution and
// custom-calendar aggregation. It holds no per-request state.
type Service struct {
	gw        Gateway
	calendars CalendarSource
	log       zerolog.Logger
}

func NewService(gw Gateway, calendars CalendarSource, log zerolog.Logger) *Service {
	return &Service{gw: gw, calendars: calendars, log: log}
}
