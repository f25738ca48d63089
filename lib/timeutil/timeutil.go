package timeutil

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fastrand"

	"github.com/splicer-tsdb/splicer/lib/fastnum"
	"github.com/splicer-tsdb/splicer/lib/tzutil"
)

var (
	// ErrInvalidAbsoluteDate is returned for absolute dates with an unsupported
	// length/layout or calendar-invalid values.
	ErrInvalidAbsoluteDate = errors.New("invalid absolute date")

	// ErrInvalidMillisecondFormat is returned for malformed <seconds>.<ms> timestamps.
	ErrInvalidMillisecondFormat = errors.New("invalid millisecond timestamp format")

	// ErrNegativeTimestamp is returned for numeric timestamps before the unix epoch.
	ErrNegativeTimestamp = errors.New("negative timestamps are not supported")
)

// ParseTimeMsec parses the given time s and returns epoch milliseconds.
//
// The accepted formats are:
//
//   - Relative: 5m-ago, 1h-ago, etc. See ParseDuration for the accepted durations.
//   - Absolute human-readable dates: "yyyy/MM/dd-HH:mm:ss", "yyyy/MM/dd HH:mm:ss",
//     "yyyy/MM/dd-HH:mm", "yyyy/MM/dd HH:mm" and "yyyy/MM/dd".
//   - Unix timestamps in seconds or milliseconds: 1355961600, 1355961600000
//     and 1355961600.000 .
//
// tzName selects the timezone for absolute dates; empty tzName means
// the default timezone - see tzutil.SetDefaultTimezone.
//
// Empty s returns the (-1, nil) sentinel instead of an error, so relaxed
// callers can treat "no time given" cheaply. All other failures return
// a non-nil error carrying s.
func ParseTimeMsec(s string, tzName string) (int64, error) {
	if s == "" {
		return -1, nil
	}
	if IsRelativeDate(s) {
		d, err := ParseDuration(s[:len(s)-len("-ago")])
		if err != nil {
			return 0, err
		}
		return time.Now().UnixMilli() - d, nil
	}
	if strings.ContainsAny(s, "/:") {
		return parseAbsoluteTime(s, tzName)
	}
	return parseUnixTime(s)
}

// IsRelativeDate reports whether s specifies a date relative to now,
// i.e. ends with "-ago" (case-insensitive).
//
// It doesn't validate that the prefix is a well-formed duration, so it may
// return true for inputs ParseTimeMsec later rejects.
func IsRelativeDate(s string) bool {
	return len(s) >= len("-ago") && strings.EqualFold(s[len(s)-len("-ago"):], "-ago")
}

// The layout is selected by the total input length; a `-` between the date
// and the time switches to the dash-separated variant.
func parseAbsoluteTime(s, tzName string) (int64, error) {
	var layout string
	switch len(s) {
	case len("2006/01/02"):
		layout = "2006/01/02"
	case len("2006/01/02-15:04"):
		layout = "2006/01/02 15:04"
		if strings.Contains(s, "-") {
			layout = "2006/01/02-15:04"
		}
	case len("2006/01/02-15:04:05"):
		layout = "2006/01/02 15:04:05"
		if strings.Contains(s, "-") {
			layout = "2006/01/02-15:04:05"
		}
	default:
		return 0, fmt.Errorf("unsupported length %d for absolute date %q: %w", len(s), s, ErrInvalidAbsoluteDate)
	}
	loc, err := tzutil.LocationOrDefault(tzName)
	if err != nil {
		return 0, err
	}
	t, err := time.ParseInLocation(layout, s, loc)
	if err != nil {
		return 0, fmt.Errorf("cannot parse absolute date %q (%s): %w", s, err, ErrInvalidAbsoluteDate)
	}
	return t.UnixMilli(), nil
}

func parseUnixTime(s string) (int64, error) {
	numeric := s
	if strings.Contains(s, ".") {
		if len(s) != len("1355961600.000") || s[10] != '.' {
			return 0, fmt.Errorf("invalid time %q: millisecond timestamps must be in the format <seconds>.<ms> with the milliseconds limited to 3 digits: %w", s, ErrInvalidMillisecondFormat)
		}
		numeric = s[:10] + s[11:]
	}
	v, err := fastnum.ParseInt64(numeric)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("invalid time %q: %w", s, ErrNegativeTimestamp)
	}
	// Inputs of up to 10 chars hold seconds, longer ones hold milliseconds.
	// The heuristic holds until unix seconds outgrow 10 digits in ~2286.
	if len(s) <= 10 {
		v *= 1000
	}
	return v, nil
}

const msecsPerDay = 24 * 3600 * 1000

// StartOfDay returns the start of the day for the given timestamp.
// Timestamp is in milliseconds.
func StartOfDay(ts int64) int64 {
	return ts - (ts % msecsPerDay)
}

// EndOfDay returns the end of the day for the given timestamp.
// Timestamp is in milliseconds.
func EndOfDay(ts int64) int64 {
	return StartOfDay(ts) + msecsPerDay - 1
}

// AddJitterToDuration adds up to 10% random jitter to d and returns the resulting duration.
//
// The maximum jitter is limited by 10 seconds.
func AddJitterToDuration(d time.Duration) time.Duration {
	dv := d / 10
	if dv > 10*time.Second {
		dv = 10 * time.Second
	}
	p := float64(fastrand.Uint32()) / (1 << 32)
	return d + time.Duration(p*float64(dv))
}
