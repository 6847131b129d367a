package booking

import (
	"context"
	"time"

	"turnero/internal/slot"
)

// Repository runs the race-sensitive state transitions. Every method that
// mutates a slot and its owner's quota does so in a single transaction.
type Repository interface {
	Book(ctx context.Context, slotID, memberID int, now time.Time) (*slot.Slot, *int, error)
	Cancel(ctx context.Context, slotID, callerID int, staffOverride bool, now time.Time) (*slot.Slot, *int, error)
	FinalizePast(ctx context.Context, now time.Time) (int64, error)
}
