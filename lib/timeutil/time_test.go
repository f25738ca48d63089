package timeutil

import (
	"testing"
)

func TestTryParseUnixTimestamp_Success(t *testing.T) {
	f := func(s string, nsecsExpected int64) {
		t.Helper()

		nsecs, ok := TryParseUnixTimestamp(s)
		if !ok {
			t.Fatalf("cannot parse timestamp %q", s)
		}
		if nsecs != nsecsExpected {
			t.Fatalf("unexpected result from TryParseUnixTimestamp(%q); got %d; want %d", s, nsecs, nsecsExpected)
		}
	}

	f("0", 0)

	// nanoseconds
	f("-1234567890123456789", -1234567890123456789)
	f("1234567890123456789", 1234567890123456789)

	// microseconds
	f("-1234567890123456", -1234567890123456000)
	f("1234567890123456", 1234567890123456000)
	f("1234567890123456.789", 1234567890123456789)

	// milliseconds
	f("-1234567890123", -1234567890123000000)
	f("1234567890123", 1234567890123000000)
	f("1234567890123.456", 1234567890123456000)

	// seconds
	f("-1234567890", -1234567890000000000)
	f("1234567890", 1234567890000000000)
	f("1234567890.123456789", 1234567890123456789)
	f("1234567890.12345678", 1234567890123456780)
	f("1234567890.1234567", 1234567890123456700)
	f("-1234567890.123456", -1234567890123456000)
	f("-1234567890.12345", -1234567890123450000)
	f("-1234567890.1234", -1234567890123400000)
	f("-1234567890.123", -1234567890123000000)
	f("-1234567890.12", -1234567890120000000)
	f("-1234567890.1", -1234567890100000000)

	// exponent notation
	f("1e9", 1000000000000000000)
	f("1.234e9", 1234000000000000000)
	f("-1.23456789e9", -1234567890000000000)
	f("1.234567890123456789e18", 1234567890123456789)
	f("-1.234567890123456789e18", -1234567890123456789)
	f("0.23456789e9", 234567890000000000)
	f("123.456789123e9", 123456789123000000)
	f("-1234.5678912e9", -1234567891200000000)
	f("123.678912e7", 1236789120000000000)
	f("1.23e7", 12300000000000000)
	f("1.23e6", 1230000000000000)
	f("1.23e5", 123000000000000)
	f("1.23e4", 12300000000000)
	f("1.23e3", 1230000000000)
	f("1.23e2", 123000000000)
	f("1.2e1", 12000000000)
	f("1123.456789123456789E15", 1123456789123456789)
}

func TestTryParseUnixTimestamp_Failure(t *testing.T) {
	f := func(s string) {
		t.Helper()

		_, ok := TryParseUnixTimestamp(s)
		if ok {
			t.Fatalf("expecting failure when parsing %q", s)
		}
	}

	// non-numeric timestamp
	f("")
	f("foobar")
	f("foo.bar")
	f("1.12345671x34")
	f("1.3e12345678x0123")
	f("1xs.12345671")
	f("1xs.12345671e5")
	f("-1xs.12345671e5")

	// missing fractional part
	f("1233344.")

	// too big timestamp
	f("12345678901234567.891")
	f("12345678901234567890")
	f("12345678901234.567891")
	f("12345678901234567890e3")
	f("12345678901234567890.234e3")
	f("-12345678901234567890")
	f("12345678901234567890.235424")
	f("12345678901234567890.235424e3")
	f("-12345678901234567890.235424")
	f("12345678901234567.89")
	f("12345678901234567.8")

	// too big fractional part
	f("0.1234567890123456789123")
	f("-0.1234567890123456789123")

	// too big decimal exponent
	f("1e19")
	f("1.3e123456789090123")

	// too small decimal exponent - the value must stay integral
	f("1.23e1")
	f("1.234e0")
	f("1E-1")
	f("1.3e-123456789090123")
}
