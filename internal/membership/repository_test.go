package membership

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupMembershipMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() { sqlxDB.Close() }
	return repo, mock, closer
}

var periodCols = []string{
	"id", "member_id", "plan_id", "valid_from", "valid_until",
	"classes_total", "classes_remaining", "created_at", "updated_at",
	"plan_name", "plan_limit_type", "plan_limit_count",
}

func TestGetActiveForMemberOn(t *testing.T) {
	repo, mock, close := setupMembershipMock(t)
	defer close()

	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	rows := sqlmock.NewRows(periodCols).AddRow(
		30, 1, 2, date.AddDate(0, 0, -10), date.AddDate(0, 0, 20),
		8, 5, now, now,
		"2x Semanal", "weekly", 2,
	)

	mock.ExpectQuery(regexp.QuoteMeta("JOIN plans p ON mp.plan_id = p.id")).
		WithArgs(1, date).
		WillReturnRows(rows)

	period, err := repo.GetActiveForMemberOn(context.Background(), 1, date)
	require.NoError(t, err)
	require.Equal(t, 30, period.ID)
	require.Equal(t, LimitWeekly, period.PlanLimitType)
	require.Equal(t, 2, period.PlanLimitCount)
	require.Equal(t, 5, period.ClassesRemaining)
}

func TestGetActiveForMemberOn_NoneActive(t *testing.T) {
	repo, mock, close := setupMembershipMock(t)
	defer close()

	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("JOIN plans p ON mp.plan_id = p.id")).
		WithArgs(1, date).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetActiveForMemberOn(context.Background(), 1, date)
	require.ErrorIs(t, err, ErrNoActivePeriod)
}

func TestGetMember(t *testing.T) {
	repo, mock, close := setupMembershipMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email FROM members WHERE id = $1")).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email"}).AddRow(1, "Ana", "ana@example.com"))

	m, err := repo.GetMember(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "ana@example.com", m.Email)
}

func TestGetMember_NotFound(t *testing.T) {
	repo, mock, close := setupMembershipMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email FROM members WHERE id = $1")).
		WithArgs(42).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetMember(context.Background(), 42)
	require.ErrorIs(t, err, ErrMemberNotFound)
}

func TestListPlans(t *testing.T) {
	repo, mock, close := setupMembershipMock(t)
	defer close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "limit_type", "limit_count", "price_cents", "active", "created_at"}).
		AddRow(1, "2x Semanal", "weekly", 2, 1500000, true, now).
		AddRow(2, "3x Semanal", "weekly", 3, 2000000, true, now).
		AddRow(3, "Pase Libre", "unlimited", 0, 2800000, true, now)

	mock.ExpectQuery(regexp.QuoteMeta("FROM plans")).
		WillReturnRows(rows)

	plans, err := repo.ListPlans(context.Background())
	require.NoError(t, err)
	require.Len(t, plans, 3)
	require.Equal(t, LimitUnlimited, plans[2].LimitType)
}

func TestGetActiveForMemberOnForUpdate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "sqlmock")
	defer sqlxDB.Close()

	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE OF mp")).
		WithArgs(1, date).
		WillReturnRows(sqlmock.NewRows(periodCols).AddRow(
			30, 1, 2, date.AddDate(0, 0, -10), date.AddDate(0, 0, 20),
			8, 5, now, now,
			"2x Semanal", "weekly", 2,
		))
	mock.ExpectCommit()

	tx, err := sqlxDB.BeginTxx(context.Background(), nil)
	require.NoError(t, err)

	period, err := GetActiveForMemberOnForUpdate(context.Background(), tx, 1, date)
	require.NoError(t, err)
	require.Equal(t, 30, period.ID)

	require.NoError(t, tx.Commit())
	require.NoError(t, mock.ExpectationsWereMet())
}
