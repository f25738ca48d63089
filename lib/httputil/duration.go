package httputil

import (
	"fmt"
	"net/http"

	"github.com/VictoriaMetrics/metrics"
	"github.com/valyala/fastjson/fastfloat"

	"github.com/splicer-tsdb/splicer/lib/timeutil"
)

// GetDuration returns duration in milliseconds from the given argKey query arg.
//
// The arg is parsed with timeutil.ParseDuration; floating-point seconds and
// Prometheus-style durations such as 1h30m are accepted as fallback formats
// for Grafana and promql-compatible clients.
func GetDuration(r *http.Request, argKey string, defaultMsecs int64) (int64, error) {
	argValue := r.FormValue(argKey)
	if len(argValue) == 0 {
		return defaultMsecs, nil
	}
	if argValue == "undefined" {
		// This hack is needed for Grafana, which may send undefined value
		return defaultMsecs, nil
	}
	msecs, err := timeutil.ParseDuration(argValue)
	if err != nil {
		// Try parsing floating-point seconds, then a Prometheus-style duration.
		secs, errFloat := fastfloat.Parse(argValue)
		if errFloat == nil {
			msecs = int64(secs * 1e3)
		} else {
			msecs, err = timeutil.ParsePromDuration(argValue)
			if err != nil {
				durationParseErrors.Inc()
				return 0, fmt.Errorf("cannot parse %q=%q: %w", argKey, argValue, err)
			}
		}
	}
	if msecs <= 0 || msecs > maxDurationMsecs {
		durationParseErrors.Inc()
		return 0, fmt.Errorf("%s=%dms is out of allowed range [%dms ... %dms]", argKey, msecs, 1, int64(maxDurationMsecs))
	}
	return msecs, nil
}

const maxDurationMsecs = 100 * 365 * 24 * 3600 * 1000

var durationParseErrors = metrics.NewCounter(`splicer_http_duration_parse_errors_total`)
