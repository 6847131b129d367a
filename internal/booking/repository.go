package booking

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"turnero/internal/membership"
	"turnero/internal/slot"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db  *sqlx.DB
	loc *time.Location
}

func NewRepository(db *sqlx.DB, loc *time.Location) Repository {
	return &repository{db: db, loc: loc}
}

const slotColumns = `id, start_time, status, member_id, reserved_at, created_at`

func lockSlot(ctx context.Context, tx *sqlx.Tx, slotID int) (*slot.Slot, error) {
	var s slot.Slot
	err := tx.GetContext(ctx, &s, `
		SELECT `+slotColumns+`
		FROM slots
		WHERE id = $1
		FOR UPDATE
	`, slotID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, slot.ErrSlotNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Book performs the whole check-then-mutate sequence under row locks on the
// slot and the membership period, so two concurrent calls on the same slot
// serialize and the loser sees ErrSlotUnavailable, never a double booking.
func (r *repository) Book(ctx context.Context, slotID, memberID int, now time.Time) (*slot.Slot, *int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback()

	s, err := lockSlot(ctx, tx, slotID)
	if err != nil {
		return nil, nil, err
	}

	if s.Status != slot.StatusAvailable || s.MemberID != nil {
		return nil, nil, ErrSlotUnavailable
	}

	// An elapsed hour is finalize-pending even if the sweep has not caught it
	// yet; confirming it would charge a class for a slot nobody can attend.
	if !s.StartTime.After(now) {
		return nil, nil, ErrSlotUnavailable
	}

	period, err := membership.GetActiveForMemberOnForUpdate(ctx, tx, memberID, slotDate(s.StartTime, r.loc))
	if err != nil {
		if errors.Is(err, membership.ErrNoActivePeriod) {
			return nil, nil, ErrMembershipInactive
		}
		return nil, nil, err
	}

	tracked := membership.IsQuotaTracked(period.PlanLimitType, period.PlanLimitCount)
	if tracked && period.ClassesRemaining <= 0 {
		return nil, nil, ErrQuotaExhausted
	}

	if from, to, ok := rollingWindow(period.PlanLimitType, s.StartTime, r.loc); ok {
		var count int
		err = tx.GetContext(ctx, &count, `
			SELECT COUNT(*)
			FROM slots
			WHERE member_id = $1 AND status = 'confirmed'
			  AND start_time >= $2 AND start_time < $3
		`, memberID, from.UTC(), to.UTC())
		if err != nil {
			return nil, nil, err
		}

		if count >= period.PlanLimitCount {
			return nil, nil, ErrPlanLimitReached
		}
	}

	var overlaps bool
	err = tx.GetContext(ctx, &overlaps, `
		SELECT EXISTS(
			SELECT 1 FROM slots
			WHERE member_id = $1 AND status = 'confirmed'
			  AND start_time < $2
			  AND start_time + interval '1 hour' > $3
		)
	`, memberID, s.EndTime().UTC(), s.StartTime.UTC())
	if err != nil {
		return nil, nil, err
	}
	if overlaps {
		return nil, nil, ErrOverlapConflict
	}

	// The state guard in the WHERE clause is the last line of defense for
	// drivers without FOR UPDATE semantics (sqlmock in tests).
	result, err := tx.ExecContext(ctx, `
		UPDATE slots
		SET status = 'confirmed', member_id = $1, reserved_at = $2
		WHERE id = $3 AND status = 'available' AND member_id IS NULL
	`, memberID, now.UTC(), slotID)
	if err != nil {
		return nil, nil, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, nil, err
	}
	if affected == 0 {
		return nil, nil, ErrSlotUnavailable
	}

	var remaining *int
	if tracked {
		left, err := membership.DecrementClasses(ctx, tx, period.ID)
		if err != nil {
			return nil, nil, err
		}
		remaining = &left
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, err
	}

	reservedAt := now.UTC()
	s.Status = slot.StatusConfirmed
	s.MemberID = &memberID
	s.ReservedAt = &reservedAt

	return s, remaining, nil
}

// Cancel releases a confirmed slot back to available and credits the class
// back to the owner's period, capped at the total.
func (r *repository) Cancel(ctx context.Context, slotID, callerID int, staffOverride bool, now time.Time) (*slot.Slot, *int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback()

	s, err := lockSlot(ctx, tx, slotID)
	if err != nil {
		return nil, nil, err
	}

	if !staffOverride && (s.MemberID == nil || *s.MemberID != callerID) {
		return nil, nil, ErrNotOwner
	}

	if !now.Before(s.StartTime.Add(-CancellationCutoff)) {
		return nil, nil, ErrCancellationWindowClosed
	}

	if s.Status != slot.StatusConfirmed || s.MemberID == nil {
		return nil, nil, ErrSlotUnavailable
	}
	owner := *s.MemberID

	result, err := tx.ExecContext(ctx, `
		UPDATE slots
		SET status = 'available', member_id = NULL, reserved_at = NULL
		WHERE id = $1 AND status = 'confirmed'
	`, slotID)
	if err != nil {
		return nil, nil, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, nil, err
	}
	if affected == 0 {
		return nil, nil, ErrSlotUnavailable
	}

	var remaining *int
	period, err := membership.GetActiveForMemberOnForUpdate(ctx, tx, owner, slotDate(s.StartTime, r.loc))
	switch {
	case err == nil:
		if membership.IsQuotaTracked(period.PlanLimitType, period.PlanLimitCount) {
			left, err := membership.IncrementClasses(ctx, tx, period.ID)
			if err != nil {
				return nil, nil, err
			}
			remaining = &left
		}
	case errors.Is(err, membership.ErrNoActivePeriod):
		// Period lapsed since booking; nothing to credit.
	default:
		return nil, nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, err
	}

	s.Status = slot.StatusAvailable
	s.MemberID = nil
	s.ReservedAt = nil

	return s, remaining, nil
}

// FinalizePast is the lazy idempotent sweep: every available or confirmed
// slot whose hour has begun becomes finalized. Blocked markers stay blocked
// so past closed hours still render as closed.
func (r *repository) FinalizePast(ctx context.Context, now time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE slots
		SET status = 'finalized'
		WHERE start_time < $1 AND status IN ('available', 'confirmed')
	`, now.UTC())
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
