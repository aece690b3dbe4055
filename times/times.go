package times

import (
	"encoding/json"
	"errors"
	"time"
)

const (
	YearMonthDayLayout = "2006-01-02"
)

// ErrUnparseable is returned when a stored time value cannot be converted
// into an instant. Callers are expected to skip the offending record and log,
// never to abort a batch.
var ErrUnparseable = errors.New("unparseable time value")

// DisplayPattern selects how an instant is rendered inside a notification body.
type DisplayPattern int

const (
	PatternDate DisplayPattern = iota
	PatternDateTime
	PatternTimeOnly
)

const (
	dateDisplayLayout     = "02.01.2006"
	dateTimeDisplayLayout = "02.01.2006 15:04"
	timeOnlyDisplayLayout = "15:04"
)

// stringLayouts are tried in order when normalizing a string value.
var stringLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	YearMonthDayLayout,
}

// Normalize converts a heterogeneous stored time value into a canonical instant.
// Records written by different clients over the years carry a native timestamp,
// a serialized {seconds, nanoseconds} pair, an epoch-seconds number, or a string.
func Normalize(raw interface{}) (time.Time, error) {
	switch v := raw.(type) {
	case time.Time:
		return v, nil
	case *time.Time:
		if v == nil {
			return time.Time{}, ErrUnparseable
		}

		return *v, nil
	case map[string]interface{}:
		return normalizeSecondsNanos(v)
	case string:
		return normalizeString(v)
	case int64:
		return time.Unix(v, 0).UTC(), nil
	case float64:
		return time.Unix(int64(v), 0).UTC(), nil
	case json.Number:
		seconds, err := v.Int64()
		if err != nil {
			return time.Time{}, ErrUnparseable
		}

		return time.Unix(seconds, 0).UTC(), nil
	default:
		return time.Time{}, ErrUnparseable
	}
}

func normalizeSecondsNanos(m map[string]interface{}) (time.Time, error) {
	seconds, ok := numberAt(m, "seconds")
	if !ok {
		seconds, ok = numberAt(m, "_seconds")
	}

	if !ok {
		return time.Time{}, ErrUnparseable
	}

	nanos, ok := numberAt(m, "nanoseconds")
	if !ok {
		nanos, _ = numberAt(m, "_nanoseconds")
	}

	return time.Unix(seconds, nanos).UTC(), nil
}

func normalizeString(s string) (time.Time, error) {
	for _, layout := range stringLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, ErrUnparseable
}

func numberAt(m map[string]interface{}, key string) (int64, bool) {
	raw, ok := m[key]
	if !ok {
		return 0, false
	}

	switch v := raw.(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	case float64:
		return int64(v), true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}

		return n, true
	default:
		return 0, false
	}
}

// FormatInLocation renders an instant in the given time zone using the
// requested display pattern. Pure and deterministic for a fixed input.
func FormatInLocation(t time.Time, loc *time.Location, pattern DisplayPattern) string {
	if loc == nil {
		loc = time.UTC
	}

	local := t.In(loc)

	switch pattern {
	case PatternDate:
		return local.Format(dateDisplayLayout)
	case PatternTimeOnly:
		return local.Format(timeOnlyDisplayLayout)
	default:
		return local.Format(dateTimeDisplayLayout)
	}
}

// DayKey returns the calendar-day key of an instant in the given time zone.
func DayKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}

	return t.In(loc).Format(YearMonthDayLayout)
}
