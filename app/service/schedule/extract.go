package schedule

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/elliotchance/pie/v2"
)

// ISOLayout renders a local date-time without a zone offset, the wire format
// of appointment candidates.
const ISOLayout = "2006-01-02T15:04:05"

// First 1-2 digits anywhere in the text, optional :MM, optional am/pm.
var timePattern = regexp.MustCompile(`(\d{1,2})(?::(\d{2}))?\s*(am|pm)?`)

type weekdayName struct {
	name string
	day  time.Weekday
}

var weekdays = []weekdayName{
	{"monday", time.Monday},
	{"tuesday", time.Tuesday},
	{"wednesday", time.Wednesday},
	{"thursday", time.Thursday},
	{"friday", time.Friday},
	{"saturday", time.Saturday},
	{"sunday", time.Sunday},
}

// Extract scans text for a weekday name and an optional clock time and
// resolves them to the next occurrence of that weekday strictly after now
// (the same weekday rolls a full week forward, "next monday" never means
// today). Weekday matching is intentionally substring-based, so "mondayish"
// still reads as monday. Without a weekday there is no candidate; without a
// clock time the appointment defaults to midnight.
func Extract(text string, now time.Time) (time.Time, bool) {
	text = strings.ToLower(text)

	idx := pie.FindFirstUsing(weekdays, func(wd weekdayName) bool {
		return strings.Contains(text, wd.name)
	})
	if idx < 0 {
		return time.Time{}, false
	}

	delta := (int(weekdays[idx].day) - int(now.Weekday()) + 7) % 7
	if delta == 0 {
		delta = 7
	}
	target := now.AddDate(0, 0, delta)

	var hour, minute int
	if m := timePattern.FindStringSubmatch(text); m != nil {
		hour, _ = strconv.Atoi(m[1])
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}

		switch m[3] {
		case "pm":
			if hour < 12 {
				hour += 12
			}
		case "am":
			if hour == 12 {
				hour = 0
			}
		}
	}

	return time.Date(target.Year(), target.Month(), target.Day(), hour, minute, 0, 0, now.Location()), true
}

// FormatISO renders a resolved appointment with zero seconds and no zone
// offset, e.g. "2026-09-04T14:00:00".
func FormatISO(t time.Time) string {
	return t.Format(ISOLayout)
}
