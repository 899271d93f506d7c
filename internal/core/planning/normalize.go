package planning

import (
	"fmt"
	"strconv"

	"github.com/epiday/epiday/internal/intra"
	"github.com/epiday/epiday/internal/intra/jsonv"
	"github.com/epiday/epiday/internal/model"
)

// PrivilegedSemester is the portal's sentinel for staff-like accounts
// (aer, ape, adm); such callers see every record.
const PrivilegedSemester = 42

const (
	defaultRoom    = "At the bar 🍺"
	defaultTeacher = "No teacher"
)

// Visible applies the semester-visibility rule:
//   - privileged callers see everything,
//   - semester-0 records (french, english, hub, ...) are semester-agnostic,
//   - otherwise the record must belong to the caller's current or previous
//     semester.
func Visible(callerSemester, eventSemester uint64) bool {
	return callerSemester == PrivilegedSemester ||
		eventSemester == 0 ||
		eventSemester+1 == callerSemester ||
		eventSemester == callerSemester
}

// Normalize maps one raw timetable record into the canonical event shape.
// keep is false when the record is invisible to the caller or carries no
// semester at all; that is a silent skip, not an error. A record missing its
// start or end time is a hard failure, because downstream consumers need a
// time to sort on.
func Normalize(raw map[string]interface{}, callerSemester uint64) (ev *model.Event, keep bool, err error) {
	// Visibility first, before any formatting cost is paid.
	semVal, present := jsonv.At(raw, "semester")
	if !present {
		// Known upstream gap: some records carry no semester at all.
		return nil, false, nil
	}
	semester, ok := toUint(semVal)
	if !ok {
		return nil, false, model.MissingField("semester")
	}
	if !Visible(callerSemester, semester) {
		return nil, false, nil
	}

	isRdvFlag, ok := jsonv.Str(raw, "is_rdv")
	if !ok {
		return nil, false, model.MissingField("is_rdv")
	}
	isRdv := isRdvFlag == "1"

	yearStr, ok := jsonv.Str(raw, "scolaryear")
	if !ok {
		return nil, false, model.MissingField("scolaryear")
	}
	year, convErr := strconv.ParseUint(yearStr, 10, 64)
	if convErr != nil {
		return nil, false, fmt.Errorf("%w: value `scolaryear` is not a number", model.ErrBadShape)
	}

	codeModule, ok := jsonv.Str(raw, "codemodule")
	if !ok {
		return nil, false, model.MissingField("codemodule")
	}
	codeInstance, ok := jsonv.Str(raw, "codeinstance")
	if !ok {
		return nil, false, model.MissingField("codeinstance")
	}
	codeActi, ok := jsonv.Str(raw, "codeacti")
	if !ok {
		return nil, false, model.MissingField("codeacti")
	}

	// Appointments have no event code of their own.
	codeEvent := ""
	if !isRdv {
		codeEvent, ok = jsonv.Str(raw, "codeevent")
		if !ok {
			return nil, false, model.MissingField("codeevent")
		}
	}

	title, ok := jsonv.Str(raw, "acti_title")
	if !ok {
		return nil, false, model.MissingField("acti_title")
	}
	module, ok := jsonv.Str(raw, "titlemodule")
	if !ok {
		return nil, false, model.MissingField("titlemodule")
	}

	room := defaultRoom
	if rawRoom, ok := jsonv.Str(raw, "room", "code"); ok {
		room = intra.FormatRoom(rawRoom)
	}

	teacher := defaultTeacher
	if prof, ok := jsonv.Str(raw, "prof_inst", 0, "title"); ok {
		teacher = prof
	} else if own, ok := jsonv.Str(raw, "title"); ok {
		teacher = own
	}

	timeStart, err := mandatoryTime(raw, "start")
	if err != nil {
		return nil, false, err
	}
	timeEnd, err := mandatoryTime(raw, "end")
	if err != nil {
		return nil, false, err
	}

	registered, err := registrationStatus(raw)
	if err != nil {
		return nil, false, err
	}

	return &model.Event{
		IsCustom:           false,
		IsRdv:              isRdv,
		IsRegular:          !isRdv,
		Year:               year,
		CodeModule:         codeModule,
		CodeInstance:       codeInstance,
		CodeActi:           codeActi,
		CodeEvent:          codeEvent,
		Semester:           semester,
		Title:              title,
		Module:             module,
		Room:               room,
		Teacher:            teacher,
		TimeStart:          timeStart,
		TimeEnd:            timeEnd,
		RegistrationStatus: registered,
	}, true, nil
}

func mandatoryTime(raw map[string]interface{}, field string) (string, error) {
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

// registrationStatus accepts the portal's two shapes for event_registered: a
// string enum ("registered"/"present" mean registered, anything else not) or
// an explicit boolean false. Any other shape is a hard failure.
func registrationStatus(raw map[string]interface{}) (bool, error) {
	if s, ok := jsonv.Str(raw, "event_registered"); ok {
		return s == "registered" || s == "present", nil
	}
	if b, ok := jsonv.Bool(raw, "event_registered"); ok {
		if b {
			return false, model.MalformedField("event_registered")
		}
		return false, nil
	}
	if _, present := jsonv.At(raw, "event_registered"); present {
		return false, model.MalformedField("event_registered")
	}
	return false, model.MissingField("event_registered")
}

func toUint(v interface{}) (uint64, bool) {
	n, ok := v.(float64)
	if !ok || n < 0 || n != float64(uint64(n)) {
		return 0, false
	}
	return uint64(n), true
}
