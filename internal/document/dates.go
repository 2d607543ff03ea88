package document

import "time"

// EndOfDay returns the last representable instant of t's calendar day, so an
// inclusive end-date filter keeps documents stamped later that day.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location()).AddDate(0, 0, 1).Add(-time.Nanosecond)
}
