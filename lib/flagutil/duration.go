package flagutil

import (
	"flag"
	"fmt"

	"github.com/splicer-tsdb/splicer/lib/timeutil"
)

// NewDuration returns new `duration` flag with the given name, defaultValue and description.
//
// DefaultValue must be a valid duration string such as "10m", "3h" or "14d".
func NewDuration(name string, defaultValue string, description string) *Duration {
	description += "\nThe following suffixes are supported: ms (millisecond), s (second), m (minute), h (hour), d (day), w (week), n (month, 30 days), y (year, 365 days)"
	d := &Duration{}
	if err := d.Set(defaultValue); err != nil {
		panic(fmt.Sprintf("BUG: can not parse default value %s for flag %s", defaultValue, name))
	}
	flag.Var(d, name, description)
	return d
}

// Duration is a flag for holding duration.
type Duration struct {
	// Msecs contains parsed duration in milliseconds.
	Msecs int64

	valueString string
}

// String implements flag.Value interface
func (d *Duration) String() string {
	return d.valueString
}

// Set implements flag.Value interface
func (d *Duration) Set(value string) error {
	msecs, err := timeutil.ParseDuration(value)
	if err != nil {
		return err
	}
	d.Msecs = msecs
	d.valueString = value
	return nil
}
