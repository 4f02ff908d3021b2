package domain

import (
	"fmt"
	"regexp"
	"time"
)

// zoneSuffix matches a trailing Z or numeric UTC offset
var zoneSuffix = regexp.MustCompile(`([zZ]|[+-]\d{2}:?\d{2})$`)

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02 15:04:05.999999999Z07:00",
}

// ParseTime parses a backend timestamp. Timestamps without a zone are UTC.
func ParseTime(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	if !zoneSuffix.MatchString(raw) {
		raw += "Z"
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", raw)
}

var displayZone = loadDisplayZone()

func loadDisplayZone() *time.Location {
	if loc, err := time.LoadLocation("Asia/Taipei"); err == nil {
		return loc
	}
	return time.FixedZone("CST", 8*60*60)
}

// DateKey returns the yyyy/mm/dd day a transaction is listed under
func (t Transaction) DateKey() string {
	ts, err := ParseTime(t.Time)
	if err != nil {
		return "Unknown date"
	}
	return ts.In(displayZone).Format("2006/01/02")
}
