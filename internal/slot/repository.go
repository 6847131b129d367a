package slot

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateAvailable(ctx context.Context, start time.Time) (*Slot, error) {
	query := `
		INSERT INTO slots (start_time, status)
		VALUES ($1, 'available')
		RETURNING id, start_time, status, member_id, reserved_at, created_at
	`

	var s Slot
	err := r.db.GetContext(ctx, &s, query, start.UTC())
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *repository) CreateBlocked(ctx context.Context, start time.Time) error {
	// The partial unique index on blocked rows makes this a no-op on rerun.
	query := `
		INSERT INTO slots (start_time, status)
		VALUES ($1, 'blocked')
		ON CONFLICT DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query, start.UTC())
	return err
}

func (r *repository) CountBookableForHour(ctx context.Context, start time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM slots
		WHERE start_time = $1 AND status != 'blocked'
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, start.UTC())
	if err != nil {
		return 0, err
	}

	return count, nil
}

func (r *repository) HasBlockedMarker(ctx context.Context, start time.Time) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM slots
			WHERE start_time = $1 AND status = 'blocked'
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, start.UTC())
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Slot, error) {
	query := `
		SELECT id, start_time, status, member_id, reserved_at, created_at
		FROM slots
		WHERE id = $1
	`

	var s Slot
	err := r.db.GetContext(ctx, &s, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}

	return &s, nil
}

func (r *repository) ListRange(ctx context.Context, from, to time.Time) ([]Slot, error) {
	query := `
		SELECT id, start_time, status, member_id, reserved_at, created_at
		FROM slots
		WHERE start_time >= $1 AND start_time < $2
		ORDER BY start_time ASC, id ASC
	`

	var slots []Slot
	err := r.db.SelectContext(ctx, &slots, query, from.UTC(), to.UTC())
	if err != nil {
		return nil, err
	}

	return slots, nil
}

func (r *repository) ListByMember(ctx context.Context, memberID int) ([]Slot, error) {
	// Finalized rows keep their member, so this covers history too.
	query := `
		SELECT id, start_time, status, member_id, reserved_at, created_at
		FROM slots
		WHERE member_id = $1
		ORDER BY start_time ASC
	`

	var slots []Slot
	err := r.db.SelectContext(ctx, &slots, query, memberID)
	if err != nil {
		return nil, err
	}

	return slots, nil
}
