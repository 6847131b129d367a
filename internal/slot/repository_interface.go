package slot

import (
	"context"
	"time"
)

type Repository interface {
	CreateAvailable(ctx context.Context, start time.Time) (*Slot, error)
	CreateBlocked(ctx context.Context, start time.Time) error
	CountBookableForHour(ctx context.Context, start time.Time) (int, error)
	HasBlockedMarker(ctx context.Context, start time.Time) (bool, error)
	GetByID(ctx context.Context, id int) (*Slot, error)
	ListRange(ctx context.Context, from, to time.Time) ([]Slot, error)
	ListByMember(ctx context.Context, memberID int) ([]Slot, error)
}
