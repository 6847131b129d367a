package slot

import "time"

type Status string

const (
	// StatusAvailable is a free bookable slot.
	StatusAvailable Status = "available"
	// StatusConfirmed is a slot assigned to a member. Cancellation is not a
	// resting state: a cancelled confirmed slot goes straight back to available.
	StatusConfirmed Status = "confirmed"
	// StatusFinalized is the terminal state of any past slot.
	StatusFinalized Status = "finalized"
	// StatusBlocked marks a non-bookable hour (Saturday midday closure) so the
	// calendar can render it as closed rather than merely absent.
	StatusBlocked Status = "blocked"
)

// SlotDuration is fixed: every slot covers exactly one hour.
const SlotDuration = time.Hour

type Slot struct {
	ID         int        `db:"id" json:"id"`
	StartTime  time.Time  `db:"start_time" json:"start_time"`
	Status     Status     `db:"status" json:"status"`
	MemberID   *int       `db:"member_id" json:"member_id,omitempty"`
	ReservedAt *time.Time `db:"reserved_at" json:"reserved_at,omitempty"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
}

// EndTime is derived, never stored.
func (s *Slot) EndTime() time.Time {
	return s.StartTime.Add(SlotDuration)
}

type GenerateWeekRequest struct {
	WeekStartDate   string `json:"week_start_date" binding:"required" example:"2026-09-07"`
	CapacityPerHour int    `json:"capacity_per_hour" binding:"required,min=1"`
}

type CreateSlotRequest struct {
	StartTime string `json:"start_time" binding:"required" example:"2026-09-07T08:00:00-03:00"`
}

type GenerateWeekResponse struct {
	SlotsCreated   int `json:"slots_created"`
	BlockedCreated int `json:"blocked_created"`
}
