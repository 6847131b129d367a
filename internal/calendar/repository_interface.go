package calendar

import (
	"context"
	"time"
)

type Repository interface {
	OccupancyByDay(ctx context.Context, from, to time.Time) ([]DayOccupancy, error)
}
