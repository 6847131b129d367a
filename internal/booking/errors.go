package booking

import "errors"

var (
	// ErrSlotUnavailable covers every way a slot can refuse a transition:
	// already confirmed, blocked, finalized, or lost to a concurrent booking.
	ErrSlotUnavailable = errors.New("slot is not available")

	ErrMembershipInactive       = errors.New("no active membership period covers the slot")
	ErrQuotaExhausted           = errors.New("no classes remaining on the membership period")
	ErrPlanLimitReached         = errors.New("plan limit reached for this window")
	ErrOverlapConflict          = errors.New("member already has a confirmed slot in this time range")
	ErrCancellationWindowClosed = errors.New("cancellation window is closed")
	ErrNotOwner                 = errors.New("slot belongs to another member")

	// ErrStaffMustDelegate rejects staff booking for themselves: staff only
	// book through the on-behalf variants.
	ErrStaffMustDelegate = errors.New("staff must book on behalf of a member")
	ErrStaffOnly         = errors.New("staff role required")
)
