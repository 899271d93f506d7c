// Package validate holds the syntax checkers for the composite identifiers
// used to address upstream resources.
package validate

import (
	"fmt"
	"regexp"
	"time"
)

var (
	moduleRx   = regexp.MustCompile(`^([A-Z])-([A-Z]*)-([0-9]*)$`)
	instanceRx = regexp.MustCompile(`^([A-Z]*)-([0-9]*)-([0-9])$`)
	activityRx = regexp.MustCompile(`^(acti-\d*)$`)
	eventRx    = regexp.MustCompile(`^(event-[0-9]*)$`)
	emailRx    = regexp.MustCompile(`^([A-Z0-9a-z.-]+@epitech\.eu)$`)
)

// Module reports whether a module code is syntactically correct (B-INF-301).
func Module(v string) bool { return moduleRx.MatchString(v) }

// Instance reports whether an instance code is syntactically correct (REN-1-1).
func Instance(v string) bool { return instanceRx.MatchString(v) }

// Activity reports whether an activity code is syntactically correct (acti-123).
func Activity(v string) bool { return activityRx.MatchString(v) }

// Event reports whether an event code is syntactically correct (event-123).
func Event(v string) bool { return eventRx.MatchString(v) }

// Email reports whether an email address is a well-formed intranet login.
func Email(v string) bool { return emailRx.MatchString(v) }

// PlanningEvent checks the coordinate of a regular event. Fields are checked
// in a fixed order (module, instance, activity, event) and the first invalid
// one is reported, so error messages stay deterministic.
func PlanningEvent(module, instance, activity, event string) error {
	if !Module(module) {
		return fmt.Errorf("field `module` is invalid")
	}
	if !Instance(instance) {
		return fmt.Errorf("field `instance` is invalid")
	}
	if !Activity(activity) {
		return fmt.Errorf("field `activity` is invalid")
	}
	if !Event(event) {
		return fmt.Errorf("field `event` is invalid")
	}
	return nil
}

// PlanningRdv checks the coordinate of an appointment, which carries the
// caller's email instead of an event code.
func PlanningRdv(module, instance, activity, email string) error {
	if !Module(module) {
		return fmt.Errorf("field `module` is invalid")
	}
	if !Instance(instance) {
		return fmt.Errorf("field `instance` is invalid")
	}
	if !Activity(activity) {
		return fmt.Errorf("field `activity` is invalid")
	}
	if !Email(email) {
		return fmt.Errorf("field `email` is invalid")
	}
	return nil
}

// Date parses a YYYY-MM-DD date. This is a calendar-aware parse, not a regex
// check, so values like 2021-02-30 are rejected.
func Date(v string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date provided")
	}
	return d, nil
}
