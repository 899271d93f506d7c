package planning

import (
	"context"
	"fmt"

	"github.com/epiday/epiday/internal/intra"
	"github.com/epiday/epiday/internal/intra/jsonv"
	"github.com/epiday/epiday/internal/model"
)

// ResolveAppointment fetches the roster for an appointment activity and
// resolves which time slot belongs to the caller, either as group master or
// as a plain group member.
//
// The scan is exhaustive: it continues through all slots even after a match,
// so with multi-slot roster data the last match wins. A second match is
// logged, since the upstream contract does not promise at most one slot per
// caller.
func (s *Service) ResolveAppointment(ctx context.Context, cred string, coord model.Coordinate, email string) (*model.Appointment, error) {
	path := fmt.Sprintf("/module/%d/%s/%s/%s/rdv/?format=json",
		coord.Year, coord.CodeModule, coord.CodeInstance, coord.CodeActi)

	body, err := s.gw.GetAuth(ctx, cred, path)
	if err != nil {
		return nil, err
	}

	doc, ok := jsonv.Decode(body)
	if !ok {
		return nil, fmt.Errorf("%w: failed to parse intra response in json", model.ErrBadShape)
	}

	title, ok := jsonv.Str(doc, "events", 0, "title")
	if !ok {
		return nil, model.MissingField("events.0.title")
	}

	// Two-level nesting: an array of days, each holding an array of
	// per-time-window slots.
	days, ok := jsonv.Arr(doc, "slots")
	if !ok {
		return nil, fmt.Errorf("%w: value `slots` is not an array", model.ErrBadShape)
	}

	var timeStart, timeEnd string
	matches := 0
	for _, day := range days {
		windows, ok := jsonv.Arr(day, "slots")
		if !ok {
			return nil, fmt.Errorf("%w: value `slots.[].slots` is not an array", model.ErrBadShape)
		}
		for _, slot := range windows {
			if !slotBelongsTo(slot, email) {
				continue
			}
			matches++
			if matches > 1 {
				s.log.Warn().
					Str("acti", coord.CodeActi).
					Int("matches", matches).
					Msg("multiple rdv slots match caller, keeping last")
			}

			date, ok := jsonv.Str(slot, "date")
			if !ok {
				return nil, model.MissingField("slots.[].slots.[].date")
			}
			duration, ok := jsonv.Num(slot, "duration")
			if !ok {
				return nil, model.MissingField("slots.[].slots.[].duration")
			}
			timeStart, timeEnd, err = intra.SlotWindow(date, int(duration))
			if err != nil {
				return nil, err
			}
		}
	}

	// By the time this resolver runs the caller is known to be registered
	// for some appointment, so an empty result is a failure, not "no
	// appointment".
	if timeStart == "" || timeEnd == "" {
		return nil, fmt.Errorf("%w: failed to extract start and end of rdv", model.ErrBadShape)
	}

	return &model.Appointment{Title: title, TimeStart: timeStart, TimeEnd: timeEnd}, nil
}

func slotBelongsTo(slot interface{}, email string) bool {
	if master, ok := jsonv.Str(slot, "master", "login"); ok && master == email {
		return true
	}
	members, ok := jsonv.Arr(slot, "members")
	if !ok {
		return false
	}
	for _, member := range members {
		if login, ok := jsonv.Str(member, "login"); ok && login == email {
			return true
		}
	}
	return false
}
