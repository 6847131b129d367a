package membership

import "time"

type LimitType string

const (
	LimitWeekly    LimitType = "weekly"
	LimitDaily     LimitType = "daily"
	LimitUnlimited LimitType = "unlimited"
)

// Plan is consumed read-only from the membership collaborator.
// LimitCount is authoritative; there is no fallback parsing of plan names.
type Plan struct {
	ID         int       `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	LimitType  LimitType `db:"limit_type" json:"limit_type"`
	LimitCount int       `db:"limit_count" json:"limit_count"`
	PriceCents int64     `db:"price_cents" json:"price_cents"`
	Active     bool      `db:"active" json:"active"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// Period is a time-bounded grant of a plan to a member, carrying the
// consumable class quota for quota-tracked plans.
type Period struct {
	ID               int       `db:"id" json:"id"`
	MemberID         int       `db:"member_id" json:"member_id"`
	PlanID           int       `db:"plan_id" json:"plan_id"`
	ValidFrom        time.Time `db:"valid_from" json:"valid_from"`
	ValidUntil       time.Time `db:"valid_until" json:"valid_until"`
	ClassesTotal     int       `db:"classes_total" json:"classes_total"`
	ClassesRemaining int       `db:"classes_remaining" json:"classes_remaining"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

type PeriodWithPlan struct {
	Period
	PlanName       string    `db:"plan_name" json:"plan_name"`
	PlanLimitType  LimitType `db:"plan_limit_type" json:"plan_limit_type"`
	PlanLimitCount int       `db:"plan_limit_count" json:"plan_limit_count"`
}

// Member is the contact projection of the external identity collaborator,
// used for confirmation emails.
type Member struct {
	ID    int    `db:"id" json:"id"`
	Name  string `db:"name" json:"name"`
	Email string `db:"email" json:"email"`
}
