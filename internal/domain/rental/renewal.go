package rental

import (
	"errors"
	"time"
)

// ErrUnsupportedRenewal rejects auto-renewal of CUSTOM rentals; silently
// skipping them would leave nextRenewalDate stale.
var ErrUnsupportedRenewal = errors.New("duration class does not support renewal")

var renewalMonths = map[DurationClass]int{
	DurationMonthly:   1,
	DurationQuarterly: 3,
	DurationSemestral: 6,
	DurationAnnual:    12,
}

// NextEndDate maps a duration class to its calendar offset from the given
// date. Month arithmetic clamps to the last day of the target month:
// Jan 31 + 1 month is Feb 29 in a leap year, Feb 28 otherwise. This rule is
// pinned by tests; changing it moves every renewal anchored on days 29-31.
func NextEndDate(class DurationClass, from time.Time) (time.Time, error) {
	months, ok := renewalMonths[class]
	if !ok {
		return time.Time{}, ErrUnsupportedRenewal
	}
	return addMonthsClamped(from, months), nil
}

func addMonthsClamped(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	firstOfTarget := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	if last := lastDayOfMonth(firstOfTarget); d > last {
		d = last
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), d,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func lastDayOfMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
