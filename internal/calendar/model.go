package calendar

import (
	"time"

	"turnero/internal/slot"
)

// SlotSummary is one slot as seen by the caller. MemberID is only populated
// for staff callers; Mine and Cancellable are computed for the owner.
type SlotSummary struct {
	ID          int         `json:"id"`
	StartTime   time.Time   `json:"start_time"`
	EndTime     time.Time   `json:"end_time"`
	Status      slot.Status `json:"status"`
	MemberID    *int        `json:"member_id,omitempty"`
	Mine        bool        `json:"mine,omitempty"`
	Cancellable bool        `json:"cancellable,omitempty"`
}

// HourBucket aggregates every slot of one operating hour. Blocked counts the
// hour's closure markers; the partial unique index on blocked rows keeps it
// at 0 or 1.
type HourBucket struct {
	Hour      int           `json:"hour"`
	Available int           `json:"available"`
	Confirmed int           `json:"confirmed"`
	Blocked   int           `json:"blocked"`
	Slots     []SlotSummary `json:"slots,omitempty"`
}

type DaySchedule struct {
	Date  string       `json:"date" example:"2026-09-07"`
	Hours []HourBucket `json:"hours"`
}

// DayOccupancy is the admin utilization report bucket.
type DayOccupancy struct {
	Bucket    string `db:"bucket" json:"bucket"`
	Confirmed int    `db:"confirmed" json:"confirmed"`
	Finalized int    `db:"finalized" json:"finalized"`
	Available int    `db:"available" json:"available"`
}
