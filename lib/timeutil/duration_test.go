package timeutil

import (
	"errors"
	"testing"
)

func TestParseDuration_Success(t *testing.T) {
	f := func(s string, msecsExpected int64) {
		t.Helper()

		msecs, err := ParseDuration(s)
		if err != nil {
			t.Fatalf("unexpected error in ParseDuration(%q): %s", s, err)
		}
		if msecs != msecsExpected {
			t.Fatalf("unexpected result from ParseDuration(%q); got %d; want %d", s, msecs, msecsExpected)
		}
	}

	f("1s", 1000)
	f("120s", 120000)
	f("10m", 600000)
	f("3h", 10800000)
	f("14d", 1209600000)
	f("1w", 604800000)
	f("2n", 5184000000)  // months are exactly 30 days
	f("1y", 31536000000) // years are exactly 365 days

	// the ms suffix returns the magnitude as literal milliseconds
	f("5ms", 5)
	f("1000ms", 1000)

	// the unit character is case-insensitive
	f("10M", 600000)
	f("2H", 7200000)
	f("1Y", 31536000000)

	// the ms special case matches the second-to-last character verbatim,
	// so only a lowercase m selects it
	f("5mS", 5)
	f("5MS", 5000)
}

func TestParseDuration_Failure(t *testing.T) {
	f := func(s string) {
		t.Helper()

		_, err := ParseDuration(s)
		if err == nil {
			t.Fatalf("expecting non-nil error in ParseDuration(%q)", s)
		}
		if !errors.Is(err, ErrInvalidDuration) {
			t.Fatalf("unexpected error kind in ParseDuration(%q); got %q; want %q", s, err, ErrInvalidDuration)
		}
	}

	// malformed or missing magnitude
	f("")
	f("m")
	f("-5m")
	f("+5m")
	f("x10m")

	// non-positive magnitude
	f("0m")
	f("00s")

	// missing or unsupported suffix
	f("10")
	f("10x")

	// overflowing product
	f("9223372036854775807h")
	f("292471209y")
}

func TestParseDuration_Deterministic(t *testing.T) {
	first, err := ParseDuration("7d")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	for i := 0; i < 10; i++ {
		msecs, err := ParseDuration("7d")
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if msecs != first {
			t.Fatalf("non-deterministic result from ParseDuration; got %d; want %d", msecs, first)
		}
	}
}

func TestParsePromDuration(t *testing.T) {
	f := func(s string, msecsExpected int64) {
		t.Helper()

		msecs, err := ParsePromDuration(s)
		if err != nil {
			t.Fatalf("unexpected error in ParsePromDuration(%q): %s", s, err)
		}
		if msecs != msecsExpected {
			t.Fatalf("unexpected result from ParsePromDuration(%q); got %d; want %d", s, msecs, msecsExpected)
		}
	}

	f("1h", 3600000)
	f("1h30m", 5400000)
	f("1.5d", 129600000)
	f("100", 100000) // floating-point seconds

	if _, err := ParsePromDuration("-1h"); err == nil {
		t.Fatalf("expecting non-nil error for negative duration")
	}
	if _, err := ParsePromDuration("foobar"); err == nil {
		t.Fatalf("expecting non-nil error for malformed duration")
	}
}
