package flagutil

import (
	"flag"
	"fmt"

	"github.com/splicer-tsdb/splicer/lib/timeutil"
)

// NewTime returns new `time` flag with the given name, defaultValue and description.
//
// DefaultValue must be in one of the formats accepted by timeutil.ParseTimeMsec.
func NewTime(name string, defaultValue string, description string) *Time {
	description += "\nThe accepted formats are relative dates such as 5m-ago, absolute dates such as 2015/10/21-16:29:30 and unix timestamps in seconds or milliseconds"
	t := &Time{}
	if err := t.Set(defaultValue); err != nil {
		panic(fmt.Sprintf("BUG: can not parse default value %s for flag %s", defaultValue, name))
	}
	flag.Var(t, name, description)
	return t
}

// Time is a flag for holding a timestamp.
type Time struct {
	// Msecs contains the parsed timestamp in epoch milliseconds.
	// It is -1 when the flag value is empty.
	Msecs int64

	timezone    string
	valueString string
}

// String implements flag.Value interface
func (t *Time) String() string {
	return t.valueString
}

// SetTimezone sets the perceived timezone for subsequent Set calls
// parsing absolute dates. An empty name means the default timezone.
func (t *Time) SetTimezone(tzName string) {
	t.timezone = tzName
}

// Set implements flag.Value interface
func (t *Time) Set(value string) error {
	msecs, err := timeutil.ParseTimeMsec(value, t.timezone)
	if err != nil {
		return err
	}
	t.Msecs = msecs
	t.valueString = value
	return nil
}
