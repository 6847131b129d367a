package slot

import (
	"context"
	"time"

	"turnero/internal/logger"
	"turnero/internal/metrics"
)

type Service interface {
	GenerateWeek(ctx context.Context, weekStart time.Time, capacityPerHour int) (*GenerateWeekResponse, error)
	CreateSingle(ctx context.Context, start time.Time) (*Slot, error)
	GetByID(ctx context.Context, id int) (*Slot, error)
	ListRange(ctx context.Context, from, to time.Time) ([]Slot, error)
}

// CacheInvalidator drops cached calendar ranges after the inventory changes,
// so new slots show up without waiting out the TTL.
type CacheInvalidator interface {
	Invalidate(ctx context.Context)
}

type service struct {
	repo  Repository
	loc   *time.Location
	cache CacheInvalidator
}

// NewService builds the slot catalog. cache may be nil; calendar reads then
// stay stale until their TTL expires.
func NewService(repo Repository, loc *time.Location, cache CacheInvalidator) Service {
	return &service{repo: repo, loc: loc, cache: cache}
}

// GenerateWeek tops up every operating hour of the target week (Monday to
// Saturday) to capacityPerHour available slots and places one blocked marker
// per closed Saturday hour. Rerunning it never duplicates anything.
func (s *service) GenerateWeek(ctx context.Context, weekStart time.Time, capacityPerHour int) (*GenerateWeekResponse, error) {
	if capacityPerHour <= 0 || capacityPerHour > MaxCapacityPerHour {
		return nil, ErrCapacityExceeded
	}

	monday := MondayOf(weekStart, s.loc)
	now := time.Now()

	resp := &GenerateWeekResponse{}

	for day := 0; day < 6; day++ {
		date := monday.AddDate(0, 0, day)

		for _, hour := range OperatingHours(date.Weekday()) {
			start := time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, s.loc)
			if start.Before(now) {
				continue
			}

			existing, err := s.repo.CountBookableForHour(ctx, start)
			if err != nil {
				return nil, err
			}

			for i := existing; i < capacityPerHour; i++ {
				if _, err := s.repo.CreateAvailable(ctx, start); err != nil {
					return nil, err
				}
				resp.SlotsCreated++
			}
		}

		for _, hour := range BlockedHours(date.Weekday()) {
			start := time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, s.loc)
			if start.Before(now) {
				continue
			}

			marked, err := s.repo.HasBlockedMarker(ctx, start)
			if err != nil {
				return nil, err
			}
			if marked {
				continue
			}

			if err := s.repo.CreateBlocked(ctx, start); err != nil {
				return nil, err
			}
			resp.BlockedCreated++
		}
	}

	metrics.RecordSlotsGenerated(resp.SlotsCreated)
	logger.Info("week generated",
		"week_start", monday.Format("2006-01-02"),
		"slots_created", resp.SlotsCreated,
		"blocked_created", resp.BlockedCreated,
	)

	if s.cache != nil && resp.SlotsCreated+resp.BlockedCreated > 0 {
		s.cache.Invalidate(ctx)
	}

	return resp, nil
}

func (s *service) CreateSingle(ctx context.Context, start time.Time) (*Slot, error) {
	if err := ValidateStartTime(start, s.loc); err != nil {
		return nil, err
	}

	created, err := s.repo.CreateAvailable(ctx, start)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	return created, nil
}

func (s *service) GetByID(ctx context.Context, id int) (*Slot, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListRange(ctx context.Context, from, to time.Time) ([]Slot, error) {
	return s.repo.ListRange(ctx, from, to)
}
