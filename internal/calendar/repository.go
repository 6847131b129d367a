package calendar

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) OccupancyByDay(ctx context.Context, from, to time.Time) ([]DayOccupancy, error) {
	query := `
SELECT
  TO_CHAR(DATE(start_time), 'YYYY-MM-DD')       AS bucket,
  COUNT(*) FILTER (WHERE status = 'confirmed')  AS confirmed,
  COUNT(*) FILTER (WHERE status = 'finalized')  AS finalized,
  COUNT(*) FILTER (WHERE status = 'available')  AS available
FROM slots
WHERE start_time >= $1 AND start_time < $2
GROUP BY DATE(start_time)
ORDER BY bucket;
`
	var stats []DayOccupancy
	if err := r.db.SelectContext(ctx, &stats, query, from.UTC(), to.UTC()); err != nil {
		return nil, err
	}
	return stats, nil
}
