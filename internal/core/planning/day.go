package planning

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/epiday/epiday/internal/intra"
	"github.com/epiday/epiday/internal/intra/jsonv"
	"github.com/epiday/epiday/internal/model"
)

// Day produces the authoritative schedule for one (caller, date) pair.
//
// The base timetable is fetched and normalized first; every kept record
// flagged as a registered appointment is then resolved concurrently and its
// placeholder title/time fields overwritten. Custom-calendar events are
// appended last, in calendar-listing order. Any hard failure in one record
// or one calendar fails the whole call: a truncated schedule is worse than a
// clear failure. No re-sort by display time is applied.
func (s *Service) Day(ctx context.Context, cred, email string, semester uint64, date time.Time) ([]model.Event, error) {
	day := date.Format(intra.DateLayout)
	path := fmt.Sprintf("/planning/load?format=json&start=%s&end=%s", day, day)

	body, err := s.gw.GetAuth(ctx, cred, path)
	if err != nil {
		return nil, err
	}

	events := make([]model.Event, 0)

	// The portal answers with an empty object instead of an empty array
	// when there are no events; a failed list parse means an empty day.
	raw, ok := jsonv.DecodeList(body)
	if !ok {
		raw = nil
	}

	seen := make(map[string]bool)
	var pending []int
	for _, rec := range raw {
		ev, keep, err := Normalize(rec, semester)
		if err != nil {
			return nil, err
		}
		if !keep || seen[dedupeKey(ev)] {
			continue
		}
		seen[dedupeKey(ev)] = true
		events = append(events, *ev)
		if ev.IsRdv && ev.RegistrationStatus {
			pending = append(pending, len(events)-1)
		}
	}

	// Appointment resolutions are independent of each other; each goroutine
	// writes only its own record. A caller-visible appointment that cannot
	// be resolved fails the request, it is never silently dropped.
	if len(pending) > 0 {
		g, gctx := errgroup.WithContext(ctx)
		for _, i := range pending {
			i := i
			g.Go(func() error {
				coord := model.Coordinate{
					Year:         events[i].Year,
					CodeModule:   events[i].CodeModule,
					CodeInstance: events[i].CodeInstance,
					CodeActi:     events[i].CodeActi,
				}
				appt, err := s.ResolveAppointment(gctx, cred, coord, email)
				if err != nil {
					return err
				}
				events[i].Title = appt.Title
				events[i].TimeStart = appt.TimeStart
				events[i].TimeEnd = appt.TimeEnd
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	custom, err := s.customDay(ctx, cred, date)
	if err != nil {
		return nil, err
	}
	for i := range custom {
		if seen[dedupeKey(&custom[i])] {
			continue
		}
		seen[dedupeKey(&custom[i])] = true
		events = append(events, custom[i])
	}

	return events, nil
}

// customDay fetches each custom calendar's events for the day. Calendars are
// independent of one another, so fetches run concurrently, but the returned
// slice preserves calendar-listing order.
func (s *Service) customDay(ctx context.Context, cred string, date time.Time) ([]model.Event, error) {
	calendars, err := s.calendars.List(ctx, cred)
	if err != nil {
		return nil, err
	}
	if len(calendars) == 0 {
		return nil, nil
	}

	perCalendar := make([][]model.Event, len(calendars))
	g, gctx := errgroup.WithContext(ctx)
	for i, cal := range calendars {
		i, cal := i, cal
		g.Go(func() error {
			events, err := s.calendars.DayEvents(gctx, cred, cal, date)
			if err != nil {
				return err
			}
			perCalendar[i] = events
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merged []model.Event
	for _, events := range perCalendar {
		merged = append(merged, events...)
	}
	return merged, nil
}

// dedupeKey identifies an event within its origin so the merged list never
// carries duplicate (origin, identifier) pairs.
func dedupeKey(ev *model.Event) string {
	switch {
	case ev.IsCustom:
		return fmt.Sprintf("custom/%d/%d", ev.CalendarID, ev.EventID)
	case ev.IsRdv:
		return "rdv/" + ev.CodeActi
	default:
		return "regular/" + ev.CodeEvent
	}
}
