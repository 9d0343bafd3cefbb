package domain

import (
	"strconv"
	"strings"
	"time"
)

// TimeLayout is the timestamp layout used for resolved relative times.
const TimeLayout = "2006-01-02T15:04:05"

// ResolveTimes expands relative time shorthands and returns a new Params;
// p itself is not modified.
//
//	starttime: "<N>years" or "<N>days" -> now minus N (UTC)
//	endtime:   "now" or "today"        -> now (UTC)
//
// Other values pass through untouched.
func ResolveTimes(p Params, now time.Time) Params {
	out := p.Clone()
	now = now.UTC()

	if v, ok := out["starttime"]; ok {
		if t, ok := relativeStart(v, now); ok {
			out["starttime"] = t.Format(TimeLayout)
		}
	}
	if v, ok := out["endtime"]; ok && (v == "now" || v == "today") {
		out["endtime"] = now.Format(TimeLayout)
	}
	return out
}

func relativeStart(v string, now time.Time) (time.Time, bool) {
	switch {
	case strings.HasSuffix(v, "years"):
		n, err := strconv.Atoi(strings.TrimSuffix(v, "years"))
		if err != nil || n < 0 {
			return time.Time{}, false
		}
		return now.AddDate(-n, 0, 0), true
	case strings.HasSuffix(v, "days"):
		n, err := strconv.Atoi(strings.TrimSuffix(v, "days"))
		if err != nil || n < 0 {
			return time.Time{}, false
		}
		return now.AddDate(0, 0, -n), true
	}
	return time.Time{}, false
}
