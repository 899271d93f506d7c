package planning

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epiday/epiday/internal/core/custom"
	"github.com/epiday/epiday/internal/model"
)

const (
	loadPath = "/planning/load?format=json&start=2020-03-21&end=2020-03-21"
	listPath = "/planning/list?format=json"
)

var testDate = time.Date(2020, 3, 21, 0, 0, 0, 0, time.UTC)

func newAggregator(gw *fakeGateway) *Service {
	return NewService(gw, custom.NewService(gw, zerolog.Nop()), zerolog.Nop())
}

func regularRecord(codeEvent, actiTitle string) string {
	return `{
		"semester": 2,
		"is_rdv": "0",
		"scolaryear": "2019",
		"codemodule": "B-INF-301",
		"codeinstance": "REN-1-1",
		"codeacti": "acti-100",
		"codeevent": "` + codeEvent + `",
		"acti_title": "` + actiTitle + `",
		"titlemodule": "Unix",
		"start": "2020-03-21 10:00:00",
		"end": "2020-03-21 12:00:00",
		"event_registered": "registered"
	}`
}

func TestDay_EmptyObjectQuirkMeansEmptyDay(t *testing.T) {
	gw := &fakeGateway{bodies: map[string][]byte{
		loadPath: []byte(`{}`),
		listPath: []byte(`{}`),
	}}

	events, err := newAggregator(gw).Day(context.Background(), testCred, "first.last@epitech.eu", 2, testDate)
	require.NoError(t, err)
	assert.Empty(t, events)
	assert.NotNil(t, events, "empty day must serialize as [] not null")
}

func TestDay_FiltersBySemester(t *testing.T) {
	gw := &fakeGateway{bodies: map[string][]byte{
		loadPath: []byte(`[
			` + regularRecord("event-1", "Kept") + `,
			{"semester": 7, "is_rdv": "0"}
		]`),
		listPath: []byte(`{}`),
	}}

	events, err := newAggregator(gw).Day(context.Background(), testCred, "first.last@epitech.eu", 2, testDate)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Kept", events[0].Title)
}

func TestDay_ResolvesRegisteredAppointments(t *testing.T) {
	gw := &fakeGateway{bodies: map[string][]byte{
		loadPath: []byte(`[{
			"semester": 0,
			"is_rdv": "1",
			"scolaryear": "2019",
			"codemodule": "B-INF-301",
			"codeinstance": "REN-1-1",
			"codeacti": "acti-123",
			"acti_title": "placeholder",
			"titlemodule": "Unix",
			"start": "2020-03-21 08:00:00",
			"end": "2020-03-21 18:00:00",
			"event_registered": "registered"
		}]`),
		rdvPath(): []byte(`{
			"events": [{"title": "Follow-up"}],
			"slots": [{"slots": [
				{"master": {"login": "first.last@epitech.eu"}, "members": [], "date": "2020-03-21 10:00:00", "duration": 30}
			]}]
		}`),
		listPath: []byte(`{}`),
	}}

	events, err := newAggregator(gw).Day(context.Background(), testCred, "first.last@epitech.eu", 2, testDate)
	require.NoError(t, err)
	require.Len(t, events, 1)

	// the placeholder title and whole-day window are overwritten with the
	// caller's resolved slot
	assert.Equal(t, "Follow-up", events[0].Title)
	assert.Equal(t, "10:00", events[0].TimeStart)
	assert.Equal(t, "10:30", events[0].TimeEnd)
	assert.True(t, events[0].IsRdv)
}

func TestDay_UnresolvableAppointmentFailsWholeRequest(t *testing.T) {
	gw := &fakeGateway{bodies: map[string][]byte{
		loadPath: []byte(`[{
			"semester": 0,
			"is_rdv": "1",
			"scolaryear": "2019",
			"codemodule": "B-INF-301",
			"codeinstance": "REN-1-1",
			"codeacti": "acti-123",
			"acti_title": "placeholder",
			"titlemodule": "Unix",
			"start": "2020-03-21 08:00:00",
			"end": "2020-03-21 18:00:00",
			"event_registered": "registered"
		}]`),
		rdvPath(): []byte(`{
			"events": [{"title": "Follow-up"}],
			"slots": [{"slots": [
				{"master": {"login": "someone.else@epitech.eu"}, "members": [], "date": "2020-03-21 10:00:00", "duration": 30}
			]}]
		}`),
		listPath: []byte(`{}`),
	}}

	_, err := newAggregator(gw).Day(context.Background(), testCred, "first.last@epitech.eu", 2, testDate)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrBadShape)
}

func TestDay_MergesCustomCalendars(t *testing.T) {
	gw := &fakeGateway{bodies: map[string][]byte{
		loadPath: []byte(`[` + regularRecord("event-1", "Lecture") + `]`),
		listPath: []byte(`[{"id": 7, "title": "Chess Club"}, {"id": 9, "title": "CTF"}]`),
		"/planning/7/events?format=json&start=2020-03-21&end=2020-03-21": []byte(`[{
			"id_calendar": 7, "id": 70, "title": "Blitz night",
			"maker": {"title": "Club Staff"},
			"start": "2020-03-21 19:00:00", "end": "2020-03-21 21:00:00"
		}]`),
		"/planning/9/events?format=json&start=2020-03-21&end=2020-03-21": []byte(`[{
			"id_calendar": 9, "id": 90, "title": "Weekly CTF",
			"maker": {"title": "Sec Lab"},
			"start": "2020-03-21 20:00:00", "end": "2020-03-21 23:00:00"
		}]`),
	}}

	events, err := newAggregator(gw).Day(context.Background(), testCred, "first.last@epitech.eu", 2, testDate)
	require.NoError(t, err)
	require.Len(t, events, 3)

	// source order: timetable first, then calendars in listing order
	assert.Equal(t, "Lecture", events[0].Title)
	assert.Equal(t, "Blitz night", events[1].Title)
	assert.Equal(t, "Weekly CTF", events[2].Title)

	// each custom event carries its own calendar's name as module
	assert.True(t, events[1].IsCustom)
	assert.Equal(t, "Chess Club", events[1].Module)
	assert.True(t, events[2].IsCustom)
	assert.Equal(t, "CTF", events[2].Module)
}

func TestDay_DropsDuplicateRecords(t *testing.T) {
	gw := &fakeGateway{bodies: map[string][]byte{
		loadPath: []byte(`[
			` + regularRecord("event-1", "Lecture") + `,
			` + regularRecord("event-1", "Lecture again") + `
		]`),
		listPath: []byte(`{}`),
	}}

	events, err := newAggregator(gw).Day(context.Background(), testCred, "first.last@epitech.eu", 2, testDate)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Lecture", events[0].Title)
}

func TestDay_NormalizationFailureFailsWholeRequest(t *testing.T) {
	gw := &fakeGateway{bodies: map[string][]byte{
		loadPath: []byte(`[{"semester": 2, "is_rdv": "0"}]`),
		listPath: []byte(`{}`),
	}}

	_, err := newAggregator(gw).Day(context.Background(), testCred, "first.last@epitech.eu", 2, testDate)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrBadShape)
}

func TestDay_UpstreamFailurePropagates(t *testing.T) {
	gw := &fakeGateway{
		bodies: map[string][]byte{},
		errs:   map[string]error{loadPath: model.ErrUpstreamUnavailable},
	}

	_, err := newAggregator(gw).Day(context.Background(), testCred, "first.last@epitech.eu", 2, testDate)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrUpstreamUnavailable)
}
