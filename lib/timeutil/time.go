package timeutil

// TryParseUnixTimestamp parses s as a unix timestamp and returns it
// in nanoseconds.
//
// The timestamp unit is detected automatically from the integer part magnitude:
//
//	below 1e10 - seconds (valid until ~2286)
//	below 1e13 - milliseconds
//	below 1e16 - microseconds
//	otherwise  - nanoseconds
//
// An optional fractional part at the unit's nanosecond resolution and
// an optional non-negative decimal exponent are accepted. The arithmetic
// is exact - values never round-trip through float64, so timestamps with
// up to 19 significant digits are preserved bit for bit.
//
// false is returned if s is malformed or the result doesn't fit int64 nanoseconds.
func TryParseUnixTimestamp(s string) (int64, bool) {
	if len(s) == 0 {
		return 0, false
	}
	minus := s[0] == '-'
	if minus {
		s = s[1:]
	}

	// Integer part digits.
	mantissa := uint64(0)
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		d := uint64(s[n] - '0')
		if mantissa > ((1<<64)-1-d)/10 {
			return 0, false
		}
		mantissa = mantissa*10 + d
		n++
	}
	if n == 0 {
		return 0, false
	}
	intValue := mantissa
	s = s[n:]

	// Fractional part digits share the mantissa, so precision is never lost.
	fracLen := 0
	if len(s) > 0 && s[0] == '.' {
		s = s[1:]
		n = 0
		for n < len(s) && s[n] >= '0' && s[n] <= '9' {
			d := uint64(s[n] - '0')
			if mantissa > ((1<<64)-1-d)/10 {
				return 0, false
			}
			mantissa = mantissa*10 + d
			n++
		}
		if n == 0 {
			return 0, false
		}
		fracLen = n
		s = s[n:]
	}

	// Optional decimal exponent. It must at least cancel out the fractional
	// part, since a timestamp with an exponent must stay integral.
	if len(s) > 0 && (s[0] == 'e' || s[0] == 'E') {
		s = s[1:]
		expMinus := false
		if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
			expMinus = s[0] == '-'
			s = s[1:]
		}
		n = 0
		exp := 0
		for n < len(s) && s[n] >= '0' && s[n] <= '9' {
			exp = exp*10 + int(s[n]-'0')
			if exp > maxDecimalExponent {
				return 0, false
			}
			n++
		}
		if n == 0 || n < len(s) {
			return 0, false
		}
		if expMinus || exp < fracLen {
			return 0, false
		}
		for i := 0; i < exp-fracLen; i++ {
			if mantissa > ((1<<64)-1)/10 {
				return 0, false
			}
			mantissa *= 10
		}
		intValue = mantissa
		fracLen = 0
	} else if len(s) > 0 {
		return 0, false
	}

	var mult uint64
	switch {
	case intValue < 1e10:
		mult = 1e9
	case intValue < 1e13:
		mult = 1e6
	case intValue < 1e16:
		mult = 1e3
	default:
		mult = 1
	}

	// The fractional part is limited by the nanosecond resolution of the unit.
	fracMult := mult
	fracPow := uint64(1)
	for i := 0; i < fracLen; i++ {
		if fracMult%10 != 0 {
			return 0, false
		}
		fracMult /= 10
		fracPow *= 10
	}

	const maxNsecs = uint64(1<<63 - 1)
	if intValue > maxNsecs/mult {
		return 0, false
	}
	nsecs := intValue * mult
	if fracLen > 0 {
		fracNsecs := (mantissa - intValue*fracPow) * fracMult
		if nsecs > maxNsecs-fracNsecs {
			return 0, false
		}
		nsecs += fracNsecs
	}
	if minus {
		return -int64(nsecs), true
	}
	return int64(nsecs), true
}

const maxDecimalExponent = 64
