package slot

import (
	"errors"
	"time"
)

var (
	ErrInvalidSlotTime  = errors.New("start time is outside the operating window")
	ErrCapacityExceeded = errors.New("capacity per hour is out of range")
	ErrSlotNotFound     = errors.New("slot not found")
)

// MaxCapacityPerHour bounds week generation; a larger target capacity is
// treated as internally inconsistent.
const MaxCapacityPerHour = 50

// hourRange is a half-open [From, To) range of whole hours; the last slot of
// the range starts at To-1.
type hourRange struct {
	From int
	To   int
}

// Operating windows in facility local time:
// Mon-Fri 08:00-22:00, Saturday 08:00-13:00 and 17:00-22:00, Sunday closed.
// The Saturday 13:00-17:00 gap carries blocked markers.
func operatingRanges(wd time.Weekday) []hourRange {
	switch wd {
	case time.Sunday:
		return nil
	case time.Saturday:
		return []hourRange{{8, 13}, {17, 22}}
	default:
		return []hourRange{{8, 22}}
	}
}

var saturdayClosure = hourRange{13, 17}

// OperatingHours lists the bookable start hours for a weekday.
func OperatingHours(wd time.Weekday) []int {
	var hours []int
	for _, r := range operatingRanges(wd) {
		for h := r.From; h < r.To; h++ {
			hours = append(hours, h)
		}
	}
	return hours
}

// BlockedHours lists the hours that get a blocked marker for a weekday.
func BlockedHours(wd time.Weekday) []int {
	if wd != time.Saturday {
		return nil
	}
	var hours []int
	for h := saturdayClosure.From; h < saturdayClosure.To; h++ {
		hours = append(hours, h)
	}
	return hours
}

// ValidateStartTime checks that a slot start is a whole hour inside the
// weekday's operating window. Validation happens in facility local time;
// the instant itself is stored as UTC.
func ValidateStartTime(start time.Time, loc *time.Location) error {
	local := start.In(loc)

	if local.Minute() != 0 || local.Second() != 0 || local.Nanosecond() != 0 {
		return ErrInvalidSlotTime
	}

	if local.Weekday() == time.Sunday {
		return ErrInvalidSlotTime
	}

	hour := local.Hour()
	for _, r := range operatingRanges(local.Weekday()) {
		if hour >= r.From && hour < r.To {
			return nil
		}
	}
	return ErrInvalidSlotTime
}

// MondayOf normalizes any date to the Monday of its ISO week, at midnight
// facility time.
func MondayOf(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	daysSinceMonday := (int(local.Weekday()) + 6) % 7
	midnight := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return midnight.AddDate(0, 0, -daysSinceMonday)
}
