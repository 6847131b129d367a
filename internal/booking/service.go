package booking

import (
	"context"
	"time"

	"turnero/internal/auth"
	"turnero/internal/logger"
	"turnero/internal/membership"
	"turnero/internal/metrics"
)

// Notifier sends booking lifecycle emails. Delivery is best effort and never
// fails the booking itself.
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, to, name string, start time.Time) error
	SendCancellation(ctx context.Context, to, name string, start time.Time) error
}

type Service interface {
	Book(ctx context.Context, authCtx auth.Context, slotID int) (*BookResponse, error)
	BookOnBehalf(ctx context.Context, authCtx auth.Context, slotID, memberID int) (*BookResponse, error)
	Cancel(ctx context.Context, authCtx auth.Context, slotID int) (*CancelResponse, error)
	CancelOnBehalf(ctx context.Context, authCtx auth.Context, slotID int) (*CancelResponse, error)
	AutoFinalize(ctx context.Context) (int64, error)
}

type service struct {
	repo     Repository
	members  membership.Repository
	notifier Notifier
}

func NewService(repo Repository, members membership.Repository, notifier Notifier) Service {
	return &service{repo: repo, members: members, notifier: notifier}
}

func (s *service) Book(ctx context.Context, authCtx auth.Context, slotID int) (*BookResponse, error) {
	if authCtx.IsStaff {
		return nil, ErrStaffMustDelegate
	}
	return s.book(ctx, slotID, authCtx.MemberID)
}

func (s *service) BookOnBehalf(ctx context.Context, authCtx auth.Context, slotID, memberID int) (*BookResponse, error) {
	if !authCtx.IsStaff {
		return nil, ErrStaffOnly
	}
	return s.book(ctx, slotID, memberID)
}

func (s *service) book(ctx context.Context, slotID, memberID int) (*BookResponse, error) {
	booked, remaining, err := s.repo.Book(ctx, slotID, memberID, time.Now())
	if err != nil {
		metrics.RecordBooking("rejected")
		return nil, err
	}

	metrics.RecordBooking("confirmed")
	logger.Info("Slot booked", "slot_id", booked.ID, "member_id", memberID)

	s.notify(ctx, memberID, booked.StartTime, true)

	return &BookResponse{Slot: booked, ClassesRemaining: remaining}, nil
}

func (s *service) Cancel(ctx context.Context, authCtx auth.Context, slotID int) (*CancelResponse, error) {
	return s.cancel(ctx, slotID, authCtx.MemberID, false)
}

func (s *service) CancelOnBehalf(ctx context.Context, authCtx auth.Context, slotID int) (*CancelResponse, error) {
	if !authCtx.IsStaff {
		return nil, ErrStaffOnly
	}
	return s.cancel(ctx, slotID, authCtx.MemberID, true)
}

func (s *service) cancel(ctx context.Context, slotID, callerID int, staffOverride bool) (*CancelResponse, error) {
	released, remaining, err := s.repo.Cancel(ctx, slotID, callerID, staffOverride, time.Now())
	if err != nil {
		return nil, err
	}

	metrics.RecordCancellation()
	logger.Info("Booking cancelled", "slot_id", released.ID, "by", callerID)

	if !staffOverride {
		s.notify(ctx, callerID, released.StartTime, false)
	}

	return &CancelResponse{Message: "Slot released", ClassesRemaining: remaining}, nil
}

// AutoFinalize sweeps past slots into their terminal state. Safe to run on a
// schedule and lazily from the calendar reads.
func (s *service) AutoFinalize(ctx context.Context) (int64, error) {
	n, err := s.repo.FinalizePast(ctx, time.Now())
	if err != nil {
		return 0, err
	}

	if n > 0 {
		metrics.RecordSlotsFinalized(n)
		logger.Info("Past slots finalized", "count", n)
	}
	return n, nil
}

func (s *service) notify(ctx context.Context, memberID int, start time.Time, confirmation bool) {
	if s.notifier == nil {
		return
	}

	member, err := s.members.GetMember(ctx, memberID)
	if err != nil {
		logger.Errorf("Cannot notify member %d: %v", memberID, err)
		return
	}

	if confirmation {
		err = s.notifier.SendBookingConfirmation(ctx, member.Email, member.Name, start)
	} else {
		err = s.notifier.SendCancellation(ctx, member.Email, member.Name, start)
	}
	if err != nil {
		logger.Errorf("Notification failed for member %d: %v", memberID, err)
	}
}
