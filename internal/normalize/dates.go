package normalize

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Spreadsheet serials count days since 1899-12-30; serial 25569 is the Unix
// epoch. Serials arriving as bare numeric strings are only trusted inside a
// range that maps to plausible calendar years (1954-2064), so that values
// like "20230101" are not misread as day counts.
const (
	serialEpochOffset = 25569
	secondsPerDay     = 86400
	minStringSerial   = 20000
	maxStringSerial   = 60000
)

// dottedDate matches DD.MM.YYYY with an optional HH:MM tail.
var dottedDate = regexp.MustCompile(`^(\d{2})\.(\d{2})\.(\d{4})(?:[ T](\d{2}:\d{2}))?$`)

// timestampLayouts are tried in order for plain date strings.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02",
	"01/02/2006 15:04",
	"01/02/2006",
}

// ResolveTimestamp converts a raw date cell into a time. It accepts native
// times, spreadsheet numeric serials, DD.MM.YYYY strings (reordered to ISO
// field order before parsing), and a list of common string layouts. The
// second return reports whether the value was resolvable.
func ResolveTimestamp(v any) (time.Time, bool) {
	switch x := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		return x, true
	case float64:
		return serialToTime(x), true
	case float32:
		return serialToTime(float64(x)), true
	case int:
		return serialToTime(float64(x)), true
	case int64:
		return serialToTime(float64(x)), true
	case string:
		return resolveTimestampString(strings.TrimSpace(x))
	default:
		return time.Time{}, false
	}
}

func resolveTimestampString(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	if m := dottedDate.FindStringSubmatch(s); m != nil {
		iso := m[3] + "-" + m[2] + "-" + m[1]
		if m[4] != "" {
			iso += " " + m[4]
			if t, err := time.Parse("2006-01-02 15:04", iso); err == nil {
				return t, true
			}
			return time.Time{}, false
		}
		if t, err := time.Parse("2006-01-02", iso); err == nil {
			return t, true
		}
		return time.Time{}, false
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		if serial >= minStringSerial && serial < maxStringSerial {
			return serialToTime(serial), true
		}
		return time.Time{}, false
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// serialToTime converts a spreadsheet day serial (fractional days carry
// time of day) to a UTC time.
func serialToTime(serial float64) time.Time {
	seconds := (serial - serialEpochOffset) * secondsPerDay
	whole := int64(seconds)
	frac := seconds - float64(whole)
	return time.Unix(whole, int64(frac*float64(time.Second))).UTC()
}
