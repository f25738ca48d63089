package tzutil

import (
	"errors"
	"flag"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

var defaultTimezone = flag.String("defaultTimezone", "", "Optional IANA timezone name to use for queries without an explicit timezone. "+
	"Timezone must be a valid IANA Time Zone. For example: America/New_York, Europe/Berlin, Etc/GMT+3 . By default the system local timezone is used. "+
	"It is applied by tzutil.Init")

// ErrUnknownTimezone is returned when a timezone name cannot be resolved.
var ErrUnknownTimezone = errors.New("unknown timezone")

// Resolve returns the *time.Location for the given IANA timezone name.
//
// Lookups are case-sensitive exact matches. Resolved locations are cached,
// so repeated lookups of the same name are lock-free.
//
// The returned error wraps ErrUnknownTimezone if name isn't present
// in the timezone database.
func Resolve(name string) (*time.Location, error) {
	return locations.lookup(name)
}

// LocationOrDefault returns the location for the given timezone name.
//
// An empty name means "no timezone given" and yields the current default
// location - see SetDefaultTimezone.
func LocationOrDefault(name string) (*time.Location, error) {
	if name == "" {
		return DefaultLocation(), nil
	}
	return Resolve(name)
}

// DefaultLocation returns the location used for parsing timestamps
// without an explicit timezone.
func DefaultLocation() *time.Location {
	return defaultLocation.Load()
}

// SetDefaultTimezone sets the default location for subsequent timestamp
// parsing without an explicit timezone.
//
// The effect is process-wide. This is a rare administrative action -
// per-query timezones must be passed explicitly to the parsing functions.
func SetDefaultTimezone(name string) error {
	loc, err := Resolve(name)
	if err != nil {
		return err
	}
	defaultLocation.Store(loc)
	return nil
}

// Init applies the -defaultTimezone command-line flag.
//
// It must be called by embedding applications after flag.Parse()
// and before the first query is parsed.
func Init() error {
	if *defaultTimezone == "" {
		return nil
	}
	return SetDefaultTimezone(*defaultTimezone)
}

var defaultLocation = func() *atomic.Pointer[time.Location] {
	var p atomic.Pointer[time.Location]
	p.Store(time.Local)
	return &p
}()

// locationCache caches successfully resolved timezone names.
//
// The set of valid names is small and stable, so entries are never evicted.
// Reads go through an immutable snapshot map; resolutions of not-yet-seen
// names go through the mutable map under the lock and are migrated into
// a fresh snapshot once they outnumber the snapshot reads.
type locationCache struct {
	mutableLock  sync.Mutex
	mutable      map[string]*time.Location
	mutableReads uint64

	readonly atomic.Pointer[map[string]*time.Location]
}

func newLocationCache() *locationCache {
	var c locationCache
	c.mutable = make(map[string]*time.Location)
	readonly := make(map[string]*time.Location)
	c.readonly.Store(&readonly)
	return &c
}

func (c *locationCache) getReadonly() map[string]*time.Location {
	return *c.readonly.Load()
}

func (c *locationCache) lookup(name string) (*time.Location, error) {
	// time.LoadLocation special-cases "" (UTC) and "Local"; neither is an IANA
	// timezone identifier, so they must miss like any other unknown name.
	// Callers wanting the default location for an absent name go through
	// LocationOrDefault.
	if name == "" || name == "Local" {
		return nil, fmt.Errorf("cannot resolve timezone %q: %w", name, ErrUnknownTimezone)
	}

	readonly := c.getReadonly()
	if loc, ok := readonly[name]; ok {
		// Fast path - the name has been found in the readonly snapshot.
		return loc, nil
	}

	// Slow path - resolve the name under the lock.
	c.mutableLock.Lock()
	defer c.mutableLock.Unlock()

	loc, ok := c.mutable[name]
	if !ok {
		// Verify whether the name has been registered by concurrent goroutines.
		readonly = c.getReadonly()
		if loc, ok = readonly[name]; !ok {
			var err error
			loc, err = time.LoadLocation(name)
			if err != nil {
				return nil, fmt.Errorf("cannot resolve timezone %q: %w", name, ErrUnknownTimezone)
			}
			c.mutable[name] = loc
		}
	}
	c.mutableReads++
	if c.mutableReads > uint64(len(readonly)) {
		c.migrateMutableToReadonlyLocked()
		c.mutableReads = 0
	}
	return loc, nil
}

func (c *locationCache) migrateMutableToReadonlyLocked() {
	readonly := c.getReadonly()
	readonlyCopy := make(map[string]*time.Location, len(readonly)+len(c.mutable))
	for name, loc := range readonly {
		readonlyCopy[name] = loc
	}
	for name, loc := range c.mutable {
		readonlyCopy[name] = loc
	}
	c.mutable = make(map[string]*time.Location)
	c.readonly.Store(&readonlyCopy)
}

var locations = newLocationCache()
