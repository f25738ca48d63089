package fastnum

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrMalformedNumber is returned when the input is empty, contains only a sign
	// or contains a non-digit character after the optional sign.
	ErrMalformedNumber = errors.New("malformed number")

	// ErrValueTooLong is returned when the input exceeds the maximum decimal length
	// of an int64 - 19 chars unsigned, 20 chars signed.
	ErrValueTooLong = errors.New("value too long")

	// ErrOverflow is returned when the input is a well-formed decimal number
	// outside the int64 range.
	ErrOverflow = errors.New("number overflows int64")
)

const (
	maxUnsignedLen = len("9223372036854775807")
	maxSignedLen   = len("-9223372036854775808")
)

// ParseInt64 parses s as a signed decimal int64.
//
// An optional leading `+` or `-` is accepted. The length guards run before
// the digit scan, so over-long inputs fail with ErrValueTooLong instead of
// ErrOverflow even when they also exceed the int64 range.
//
// The returned error wraps ErrMalformedNumber, ErrValueTooLong or ErrOverflow
// and always contains s.
func ParseInt64(s string) (int64, error) {
	if len(s) == 0 {
		return 0, fmt.Errorf("cannot parse empty string as int64: %w", ErrMalformedNumber)
	}
	maxLen := maxUnsignedLen
	if s[0] == '+' || s[0] == '-' {
		maxLen = maxSignedLen
	}
	if len(s) > maxLen {
		return 0, fmt.Errorf("cannot parse %q as int64: %w", s, ErrValueTooLong)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) {
			return 0, fmt.Errorf("cannot parse %q as int64: %w", s, ErrOverflow)
		}
		return 0, fmt.Errorf("cannot parse %q as int64: %w", s, ErrMalformedNumber)
	}
	return n, nil
}
