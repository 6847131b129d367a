package membership

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

// A weekly allowance is multiplied into a 4-week monthly allotment.
const weeksPerPeriod = 4

// Only small weekly plans ration classes through the counter (the operator's
// "2x"/"3x" tiers). Daily and unlimited plans are rationed by the rolling
// window alone.
const maxTrackedWeeklyCount = 3

func IsQuotaTracked(limitType LimitType, limitCount int) bool {
	return limitType == LimitWeekly && limitCount >= 1 && limitCount <= maxTrackedWeeklyCount
}

func ClassesTotalFor(limitCount int) int {
	return limitCount * weeksPerPeriod
}

// DecrementClasses consumes one class from the period, guarded so the counter
// never goes below zero. A period already at zero is left untouched (the
// booking engine rejects that case before reaching here). Runs on the caller's
// transaction so the quota change commits or rolls back with the slot change.
func DecrementClasses(ctx context.Context, ext sqlx.ExtContext, periodID int) (int, error) {
	var remaining int
	err := sqlx.GetContext(ctx, ext, &remaining, `
		UPDATE membership_periods
		SET classes_remaining = classes_remaining - 1,
		    updated_at = NOW()
		WHERE id = $1 AND classes_remaining > 0
		RETURNING classes_remaining
	`, periodID)
	if err == nil {
		return remaining, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}

	// No row updated: the counter was already at zero. No-op.
	err = sqlx.GetContext(ctx, ext, &remaining, `
		SELECT classes_remaining FROM membership_periods WHERE id = $1
	`, periodID)
	return remaining, err
}

// IncrementClasses returns one class to the period, capped at the total.
func IncrementClasses(ctx context.Context, ext sqlx.ExtContext, periodID int) (int, error) {
	var remaining int
	err := sqlx.GetContext(ctx, ext, &remaining, `
		UPDATE membership_periods
		SET classes_remaining = LEAST(classes_remaining + 1, classes_total),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING classes_remaining
	`, periodID)
	return remaining, err
}
