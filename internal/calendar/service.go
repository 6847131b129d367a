package calendar

import (
	"context"
	"sort"
	"time"

	"turnero/internal/auth"
	"turnero/internal/booking"
	"turnero/internal/logger"
	"turnero/internal/slot"
)

// Finalizer runs the lazy sweep before every range read, so the calendar
// never shows a past slot as bookable.
type Finalizer interface {
	AutoFinalize(ctx context.Context) (int64, error)
}

type Service interface {
	Calendar(ctx context.Context, caller *auth.Context, from, to time.Time) ([]DaySchedule, error)
	ListMine(ctx context.Context, memberID int) ([]SlotSummary, error)
	OccupancyByDay(ctx context.Context, from, to time.Time) ([]DayOccupancy, error)
}

type service struct {
	slots     slot.Repository
	stats     Repository
	finalizer Finalizer
	cache     *Cache
	loc       *time.Location
}

// NewService builds the read side. cache may be nil; every read then goes to
// the database.
func NewService(slots slot.Repository, stats Repository, finalizer Finalizer, cache *Cache, loc *time.Location) Service {
	return &service{slots: slots, stats: stats, finalizer: finalizer, cache: cache, loc: loc}
}

func (s *service) Calendar(ctx context.Context, caller *auth.Context, from, to time.Time) ([]DaySchedule, error) {
	if s.finalizer != nil {
		if _, err := s.finalizer.AutoFinalize(ctx); err != nil {
			// Stale statuses are tolerable; the booking path re-checks anyway.
			logger.Errorf("Lazy finalize failed: %v", err)
		}
	}

	rows, err := s.loadRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return s.aggregate(rows, caller, time.Now()), nil
}

func (s *service) loadRange(ctx context.Context, from, to time.Time) ([]slot.Slot, error) {
	if s.cache != nil {
		if rows, ok := s.cache.GetRange(ctx, from, to); ok {
			return rows, nil
		}
	}

	rows, err := s.slots.ListRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetRange(ctx, from, to, rows)
	}
	return rows, nil
}

// aggregate groups the raw rows into per-day, per-hour buckets and applies
// role scoping: staff sees every assignment, a member sees availability plus
// their own bookings, anonymous sees availability only.
func (s *service) aggregate(rows []slot.Slot, caller *auth.Context, now time.Time) []DaySchedule {
	isStaff := caller != nil && caller.IsStaff

	type hourKey struct {
		date string
		hour int
	}

	buckets := make(map[hourKey]*HourBucket)
	dayOrder := make(map[string][]int)

	for i := range rows {
		r := &rows[i]
		local := r.StartTime.In(s.loc)
		key := hourKey{date: local.Format("2006-01-02"), hour: local.Hour()}

		b, ok := buckets[key]
		if !ok {
			b = &HourBucket{Hour: key.hour}
			buckets[key] = b
			dayOrder[key.date] = append(dayOrder[key.date], key.hour)
		}

		mine := caller != nil && !caller.IsStaff &&
			r.MemberID != nil && *r.MemberID == caller.MemberID

		switch r.Status {
		case slot.StatusBlocked:
			b.Blocked++
		case slot.StatusAvailable:
			b.Available++
		case slot.StatusConfirmed:
			b.Confirmed++
			if !isStaff && !mine {
				continue
			}
		case slot.StatusFinalized:
			if !isStaff && !mine {
				continue
			}
		}

		summary := SlotSummary{
			ID:        r.ID,
			StartTime: r.StartTime,
			EndTime:   r.EndTime(),
			Status:    r.Status,
			Mine:      mine,
		}
		if isStaff {
			summary.MemberID = r.MemberID
		}
		if mine && r.Status == slot.StatusConfirmed {
			summary.Cancellable = now.Before(r.StartTime.Add(-booking.CancellationCutoff))
		}
		b.Slots = append(b.Slots, summary)
	}

	days := make([]DaySchedule, 0, len(dayOrder))
	for date, hours := range dayOrder {
		sort.Ints(hours)
		day := DaySchedule{Date: date, Hours: make([]HourBucket, 0, len(hours))}
		for _, h := range hours {
			day.Hours = append(day.Hours, *buckets[hourKey{date: date, hour: h}])
		}
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	return days
}

func (s *service) ListMine(ctx context.Context, memberID int) ([]SlotSummary, error) {
	if s.finalizer != nil {
		if _, err := s.finalizer.AutoFinalize(ctx); err != nil {
			logger.Errorf("Lazy finalize failed: %v", err)
		}
	}

	rows, err := s.slots.ListByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	out := make([]SlotSummary, 0, len(rows))
	for i := range rows {
		r := &rows[i]
		summary := SlotSummary{
			ID:        r.ID,
			StartTime: r.StartTime,
			EndTime:   r.EndTime(),
			Status:    r.Status,
			Mine:      true,
		}
		if r.Status == slot.StatusConfirmed {
			summary.Cancellable = now.Before(r.StartTime.Add(-booking.CancellationCutoff))
		}
		out = append(out, summary)
	}
	return out, nil
}

func (s *service) OccupancyByDay(ctx context.Context, from, to time.Time) ([]DayOccupancy, error) {
	return s.stats.OccupancyByDay(ctx, from, to)
}
