// Package clock handles the zero-padded wall-clock strings the punch tables
// store. Times are HH:MM:SS with seconds optional; dates are YYYY-MM-DD.
package clock

import (
	"strconv"
	"strings"
)

// AbsentClock is the sentinel the break ledger writes for intervals that were
// never taken. Both ends of a not-taken interval carry this value.
const AbsentClock = "00:00:00"

const DateLayout = "2006-01-02"

// minutes converts an HH:MM:SS wall-clock string to minutes since midnight.
// Seconds are optional and default to zero. Callers are expected to have
// validated the format; a malformed component simply parses as zero.
func minutes(s string) float64 {
	parts := strings.Split(s, ":")

	h, _ := strconv.Atoi(parts[0])
	m := 0
	if len(parts) > 1 {
		m, _ = strconv.Atoi(parts[1])
	}
	sec := 0
	if len(parts) > 2 {
		sec, _ = strconv.Atoi(parts[2])
	}

	return float64(h*60+m) + float64(sec)/60
}

// HoursBetween returns the signed span in hours between two wall-clock
// strings on the same day. Overnight shifts are not supported: an end before
// the start yields a negative span.
func HoursBetween(start, end string) float64 {
	return (minutes(end) - minutes(start)) / 60
}

// IntervalHours is HoursBetween guarded for break intervals: an absent or
// sentinel-valued endpoint contributes nothing.
func IntervalHours(start, end string) float64 {
	if start == "" || end == "" || start == AbsentClock || end == AbsentClock {
		return 0
	}
	return HoursBetween(start, end)
}
