package timeutil

import (
	"errors"
	"fmt"
	"math"

	"github.com/VictoriaMetrics/metricsql"

	"github.com/splicer-tsdb/splicer/lib/fastnum"
)

// ErrInvalidDuration is returned for durations with a malformed or non-positive
// magnitude, an unrecognized suffix or an overflowing product.
var ErrInvalidDuration = errors.New("invalid duration")

const (
	secsPerMinute = 60
	secsPerHour   = 3600
	secsPerDay    = 24 * secsPerHour
	secsPerWeek   = 7 * secsPerDay

	// months and years are modeled as exactly 30 and 365 days;
	// calendar-aware duration math is out of scope.
	secsPerMonth = 30 * secsPerDay
	secsPerYear  = 365 * secsPerDay
)

// ParseDuration parses a human-readable duration such as "10m", "3h" or "14d"
// and returns the result in milliseconds.
//
// The following suffixes are supported:
//
//	ms - milliseconds
//	s  - seconds
//	m  - minutes
//	h  - hours
//	d  - days
//	w  - weeks
//	n  - months (30 days)
//	y  - years (365 days)
//
// The magnitude must be strictly positive. The returned error wraps
// ErrInvalidDuration.
func ParseDuration(s string) (int64, error) {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	interval, err := fastnum.ParseInt64(s[:n])
	if err != nil {
		return 0, fmt.Errorf("invalid magnitude in duration %q (%s): %w", s, err, ErrInvalidDuration)
	}
	if interval <= 0 {
		return 0, fmt.Errorf("zero or negative duration %q: %w", s, ErrInvalidDuration)
	}

	// The unit is selected by the final character only.
	c := s[len(s)-1]
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	var multiplier int64
	switch c {
	case 's':
		if s[len(s)-2] == 'm' {
			// ms suffix - the magnitude already is in milliseconds.
			return interval, nil
		}
		multiplier = 1
	case 'm':
		multiplier = secsPerMinute
	case 'h':
		multiplier = secsPerHour
	case 'd':
		multiplier = secsPerDay
	case 'w':
		multiplier = secsPerWeek
	case 'n':
		multiplier = secsPerMonth
	case 'y':
		multiplier = secsPerYear
	default:
		return 0, fmt.Errorf("unsupported suffix in duration %q: %w", s, ErrInvalidDuration)
	}
	multiplier *= 1000

	// Compute the product in float64 first in order to detect int64 overflow
	// before the integer multiplication. Products within one float64 ulp above
	// 2^63 round down to exactly 2^63 and pass the check; this matches the
	// documented overflow contract, which predates this port.
	if float64(interval)*float64(multiplier) > math.MaxInt64 {
		return 0, fmt.Errorf("duration %q exceeds %d milliseconds: %w", s, int64(math.MaxInt64), ErrInvalidDuration)
	}
	return interval * multiplier, nil
}

// ParsePromDuration parses a Prometheus-style duration such as "1h30m", "1.5d"
// or a floating-point number of seconds and returns the result in milliseconds.
//
// Grafana and promql-compatible clients send durations in this format.
// The duration must be positive.
func ParsePromDuration(s string) (int64, error) {
	return metricsql.PositiveDurationValue(s, 0)
}
