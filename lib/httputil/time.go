package httputil

import (
	"fmt"
	"net/http"

	"github.com/VictoriaMetrics/metrics"

	"github.com/splicer-tsdb/splicer/lib/timeutil"
)

// GetTime returns time in milliseconds from the given argKey query arg.
//
// The arg is parsed with timeutil.ParseTimeMsec; the optional `tz` query arg
// selects the timezone for absolute dates.
//
// If argKey is missing in r, then defaultMsecs rounded to seconds is returned.
// The rounding is needed in order to align query results in Grafana
// executed at different times.
func GetTime(r *http.Request, argKey string, defaultMsecs int64) (int64, error) {
	argValue := r.FormValue(argKey)
	if len(argValue) == 0 {
		return roundToSeconds(defaultMsecs), nil
	}
	msecs, err := timeutil.ParseTimeMsec(argValue, r.FormValue("tz"))
	if err != nil {
		timeParseErrors.Inc()
		return 0, fmt.Errorf("cannot parse %s=%s: %w", argKey, argValue, err)
	}
	if msecs < minTimeMsecs {
		msecs = minTimeMsecs
	}
	if msecs > maxTimeMsecs {
		msecs = maxTimeMsecs
	}
	return msecs, nil
}

const (
	// These values prevent from overflow when storing msec-precision time in int64.
	minTimeMsecs = 0
	maxTimeMsecs = int64(1<<63-1) / 1e6
)

func roundToSeconds(ms int64) int64 {
	return ms - ms%1000
}

var timeParseErrors = metrics.NewCounter(`splicer_http_time_parse_errors_total`)
