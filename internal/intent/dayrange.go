package intent

import "time"

// DayRange returns the inclusive boundaries of the calendar day containing
// date in the display timezone loc: local 00:00:00.000 and local 23:59:59.999.
// The end is derived from the next day's midnight rather than a fixed
// duration, so both boundaries stay on the same calendar date across DST
// transitions.
func DayRange(date time.Time, loc *time.Location) (time.Time, time.Time) {
	local := date.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	end := time.Date(local.Year(), local.Month(), local.Day()+1, 0, 0, 0, 0, loc).Add(-time.Millisecond)
	return start, end
}
