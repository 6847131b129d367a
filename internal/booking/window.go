package booking

import (
	"time"

	"turnero/internal/membership"
	"turnero/internal/slot"
)

// rollingWindow returns the [from, to) window in which a plan's limit_count
// applies around a slot start, evaluated in facility local time. Unlimited
// plans have no window (ok == false).
func rollingWindow(limitType membership.LimitType, start time.Time, loc *time.Location) (from, to time.Time, ok bool) {
	switch limitType {
	case membership.LimitWeekly:
		// ISO week, Monday through Sunday.
		from = slot.MondayOf(start, loc)
		return from, from.AddDate(0, 0, 7), true
	case membership.LimitDaily:
		local := start.In(loc)
		from = time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
		return from, from.AddDate(0, 0, 1), true
	default:
		return time.Time{}, time.Time{}, false
	}
}

// slotDate is the calendar date of a slot start in facility local time,
// used to match membership period validity.
func slotDate(start time.Time, loc *time.Location) time.Time {
	local := start.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}
