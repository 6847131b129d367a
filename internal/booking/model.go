package booking

import (
	"time"

	"turnero/internal/slot"
)

// CancellationCutoff is the wall-clock boundary before a slot's start after
// which the booking can no longer be cancelled.
const CancellationCutoff = time.Hour

type BookResponse struct {
	Slot *slot.Slot `json:"slot"`
	// ClassesRemaining is nil for plans that do not ration classes.
	ClassesRemaining *int `json:"classes_remaining,omitempty"`
}

type CancelResponse struct {
	Message          string `json:"message" example:"Slot released"`
	ClassesRemaining *int   `json:"classes_remaining,omitempty"`
}

type BookOnBehalfRequest struct {
	MemberID int `json:"member_id" binding:"required,min=1"`
}
