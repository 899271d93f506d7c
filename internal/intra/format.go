package intra

import (
	"regexp"
	"strings"
	"time"

	"github.com/epiday/epiday/internal/model"
)

// TimestampLayout is the portal's full timestamp form (yyyy-mm-dd HH:MM:SS).
const TimestampLayout = "2006-01-02 15:04:05"

// DateLayout is the portal's date-only form (yyyy-mm-dd).
const DateLayout = "2006-01-02"

// Raw room format: "Country/City/Location/Room-Name". The leading
// country/city pair is optional.
var roomPrefixRx = regexp.MustCompile(`^[a-zA-Z]+/[a-zA-Z]+/`)

// FormatRoom prettifies a raw room path into an easily-readable name.
//
//	FormatRoom("FR/REN/Epitech/Bureau-De-Laurene") == "Epitech → Bureau De Laurene"
//
// The function is idempotent on already-clean input.
func FormatRoom(raw string) string {
	room := roomPrefixRx.ReplaceAllString(raw, "")
	room = strings.ReplaceAll(room, "/", " → ")
	return strings.ReplaceAll(room, "-", " ")
}

// FormatTime extracts the HH:MM display time from a full portal timestamp.
func FormatTime(raw string) (string, error) {
	t, err := time.Parse(TimestampLayout, raw)
	if err != nil {
		return "", err
	}
	return t.Format("15:04"), nil
}

// SlotWindow derives the display window of an appointment slot from its start
// timestamp and its duration in minutes. Duration is integer arithmetic on a
// parsed time, never string concatenation.
func SlotWindow(start string, durationMinutes int) (timeStart, timeEnd string, err error) {
	t, err := time.Parse(TimestampLayout, start)
	if err != nil {
		return "", "", model.MalformedField("date")
	}
	end := t.Add(time.Duration(durationMinutes) * time.Minute)
	return t.Format("15:04"), end.Format("15:04"), nil
}
