package command

import (
	"strings"
	"time"
)

var dateLayouts = []string{
	"2006-01-02",
	"2006-1-2",
	"2006/01/02",
	"2006/1/2",
	"20060102",
	"02.01.2006",
	"2.1.2006",
}

// relativeDays maps Swedish day words to an offset from today.
var relativeDays = map[string]int{
	"igår":    -1,
	"idag":    0,
	"imorgon": 1,
}

// ParseDate reads a calendar date or a relative day word. It reports false
// when s is empty or not a date.
func ParseDate(s string, now time.Time) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if offset, ok := relativeDays[strings.ToLower(s)]; ok {
		y, m, d := now.Date()
		return time.Date(y, m, d+offset, 0, 0, 0, 0, now.Location()), true
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
