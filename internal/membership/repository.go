package membership

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

var (
	ErrNoActivePeriod = errors.New("no active membership period")
	ErrMemberNotFound = errors.New("member not found")
)

const periodWithPlanColumns = `
	mp.id, mp.member_id, mp.plan_id, mp.valid_from, mp.valid_until,
	mp.classes_total, mp.classes_remaining, mp.created_at, mp.updated_at,
	p.name AS plan_name,
	p.limit_type AS plan_limit_type,
	p.limit_count AS plan_limit_count`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetActiveForMemberOn(ctx context.Context, memberID int, date time.Time) (*PeriodWithPlan, error) {
	query := `
		SELECT` + periodWithPlanColumns + `
		FROM membership_periods mp
		JOIN plans p ON mp.plan_id = p.id
		WHERE mp.member_id = $1
		  AND mp.valid_from <= $2
		  AND mp.valid_until >= $2
		ORDER BY mp.valid_until DESC
		LIMIT 1
	`

	var period PeriodWithPlan
	err := r.db.GetContext(ctx, &period, query, memberID, date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoActivePeriod
		}
		return nil, err
	}

	return &period, nil
}

func (r *repository) GetMember(ctx context.Context, memberID int) (*Member, error) {
	var m Member
	err := r.db.GetContext(ctx, &m, `SELECT id, name, email FROM members WHERE id = $1`, memberID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	return &m, nil
}

func (r *repository) ListPlans(ctx context.Context) ([]Plan, error) {
	var plans []Plan
	err := r.db.SelectContext(ctx, &plans, `
		SELECT id, name, limit_type, limit_count, price_cents, active, created_at
		FROM plans
		WHERE active
		ORDER BY price_cents ASC
	`)
	return plans, err
}

// GetActiveForMemberOnForUpdate locks the membership period row inside the
// caller's booking transaction so the quota check and its mutation are one
// atomic unit.
func GetActiveForMemberOnForUpdate(ctx context.Context, tx *sqlx.Tx, memberID int, date time.Time) (*PeriodWithPlan, error) {
	query := `
		SELECT` + periodWithPlanColumns + `
		FROM membership_periods mp
		JOIN plans p ON mp.plan_id = p.id
		WHERE mp.member_id = $1
		  AND mp.valid_from <= $2
		  AND mp.valid_until >= $2
		ORDER BY mp.valid_until DESC
		LIMIT 1
		FOR UPDATE OF mp
	`

	var period PeriodWithPlan
	err := tx.GetContext(ctx, &period, query, memberID, date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoActivePeriod
		}
		return nil, err
	}

	return &period, nil
}
