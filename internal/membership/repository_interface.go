package membership

import (
	"context"
	"time"
)

type Repository interface {
	GetActiveForMemberOn(ctx context.Context, memberID int, date time.Time) (*PeriodWithPlan, error)
	GetMember(ctx context.Context, memberID int) (*Member, error)
	ListPlans(ctx context.Context) ([]Plan, error)
}
