package calendar

import (
	"context"
	"os"
	"testing"
	"time"

	"turnero/internal/auth"
	"turnero/internal/logger"
	"turnero/internal/slot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()

	code := m.Run()
	os.Exit(code)
}

type MockSlotRepo struct{ mock.Mock }
type MockStatsRepo struct{ mock.Mock }
type MockFinalizer struct{ mock.Mock }

func (m *MockSlotRepo) CreateAvailable(ctx context.Context, start time.Time) (*slot.Slot, error) {
	args := m.Called(ctx, start)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*slot.Slot), args.Error(1)
}

func (m *MockSlotRepo) CreateBlocked(ctx context.Context, start time.Time) error {
	return m.Called(ctx, start).Error(0)
}

func (m *MockSlotRepo) CountBookableForHour(ctx context.Context, start time.Time) (int, error) {
	args := m.Called(ctx, start)
	return args.Int(0), args.Error(1)
}

func (m *MockSlotRepo) HasBlockedMarker(ctx context.Context, start time.Time) (bool, error) {
	args := m.Called(ctx, start)
	return args.Bool(0), args.Error(1)
}

func (m *MockSlotRepo) GetByID(ctx context.Context, id int) (*slot.Slot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*slot.Slot), args.Error(1)
}

func (m *MockSlotRepo) ListRange(ctx context.Context, from, to time.Time) ([]slot.Slot, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]slot.Slot), args.Error(1)
}

func (m *MockSlotRepo) ListByMember(ctx context.Context, memberID int) ([]slot.Slot, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]slot.Slot), args.Error(1)
}

func (m *MockStatsRepo) OccupancyByDay(ctx context.Context, from, to time.Time) ([]DayOccupancy, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]DayOccupancy), args.Error(1)
}

func (m *MockFinalizer) AutoFinalize(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func testLoc(t *testing.T) *time.Location {
	loc, err := time.LoadLocation("America/Argentina/Buenos_Aires")
	require.NoError(t, err)
	return loc
}

func intPtr(v int) *int { return &v }

// Monday 2026-09-07 at the given local hour.
func mondaySlot(t *testing.T, id, hour int, status slot.Status, memberID *int) slot.Slot {
	loc := testLoc(t)
	start := time.Date(2026, 9, 7, hour, 0, 0, 0, loc).UTC()
	return slot.Slot{ID: id, StartTime: start, Status: status, MemberID: memberID}
}

func calendarFixture(t *testing.T) []slot.Slot {
	return []slot.Slot{
		mondaySlot(t, 1, 8, slot.StatusAvailable, nil),
		mondaySlot(t, 2, 8, slot.StatusAvailable, nil),
		mondaySlot(t, 3, 8, slot.StatusConfirmed, intPtr(1)),
		mondaySlot(t, 4, 9, slot.StatusConfirmed, intPtr(2)),
		mondaySlot(t, 5, 13, slot.StatusBlocked, nil),
	}
}

func setupCalendar(t *testing.T, rows []slot.Slot) (Service, *MockSlotRepo, *MockFinalizer) {
	slots := new(MockSlotRepo)
	finalizer := new(MockFinalizer)

	finalizer.On("AutoFinalize", mock.Anything).Return(int64(0), nil)
	slots.On("ListRange", mock.Anything, mock.Anything, mock.Anything).Return(rows, nil)

	svc := NewService(slots, new(MockStatsRepo), finalizer, nil, testLoc(t))
	return svc, slots, finalizer
}

func weekRange(t *testing.T) (time.Time, time.Time) {
	loc := testLoc(t)
	from := time.Date(2026, 9, 7, 0, 0, 0, 0, loc)
	return from, from.AddDate(0, 0, 7)
}

func TestCalendar_AnonymousSeesAvailabilityOnly(t *testing.T) {
	svc, _, finalizer := setupCalendar(t, calendarFixture(t))
	from, to := weekRange(t)

	days, err := svc.Calendar(context.Background(), nil, from, to)
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, "2026-09-07", days[0].Date)
	require.Len(t, days[0].Hours, 3)

	eight := days[0].Hours[0]
	assert.Equal(t, 8, eight.Hour)
	assert.Equal(t, 2, eight.Available)
	assert.Equal(t, 1, eight.Confirmed)
	// Counted, but the confirmed slot itself is not listed.
	assert.Len(t, eight.Slots, 2)
	for _, s := range eight.Slots {
		assert.Equal(t, slot.StatusAvailable, s.Status)
		assert.Nil(t, s.MemberID)
	}

	nine := days[0].Hours[1]
	assert.Equal(t, 1, nine.Confirmed)
	assert.Empty(t, nine.Slots)

	thirteen := days[0].Hours[2]
	assert.Equal(t, 1, thirteen.Blocked)

	finalizer.AssertCalled(t, "AutoFinalize", mock.Anything)
}

func TestCalendar_MemberSeesOwnBooking(t *testing.T) {
	svc, _, _ := setupCalendar(t, calendarFixture(t))
	from, to := weekRange(t)

	caller := &auth.Context{MemberID: 1}
	days, err := svc.Calendar(context.Background(), caller, from, to)
	require.NoError(t, err)

	eight := days[0].Hours[0]
	require.Len(t, eight.Slots, 3)

	var mine *SlotSummary
	for i := range eight.Slots {
		if eight.Slots[i].Mine {
			mine = &eight.Slots[i]
		}
	}
	require.NotNil(t, mine)
	assert.Equal(t, 3, mine.ID)
	assert.Nil(t, mine.MemberID)
	assert.True(t, mine.Cancellable)

	// Member 2's booking at 09 is counted but hidden.
	assert.Empty(t, days[0].Hours[1].Slots)
}

func TestCalendar_StaffSeesAssignments(t *testing.T) {
	svc, _, _ := setupCalendar(t, calendarFixture(t))
	from, to := weekRange(t)

	caller := &auth.Context{MemberID: 9, IsStaff: true}
	days, err := svc.Calendar(context.Background(), caller, from, to)
	require.NoError(t, err)

	nine := days[0].Hours[1]
	require.Len(t, nine.Slots, 1)
	require.NotNil(t, nine.Slots[0].MemberID)
	assert.Equal(t, 2, *nine.Slots[0].MemberID)
	assert.False(t, nine.Slots[0].Mine)
}

func TestCalendar_FinalizeFailureDoesNotBlockRead(t *testing.T) {
	slots := new(MockSlotRepo)
	finalizer := new(MockFinalizer)

	finalizer.On("AutoFinalize", mock.Anything).Return(int64(0), assert.AnError)
	slots.On("ListRange", mock.Anything, mock.Anything, mock.Anything).Return([]slot.Slot{}, nil)

	svc := NewService(slots, new(MockStatsRepo), finalizer, nil, testLoc(t))
	from, to := weekRange(t)

	days, err := svc.Calendar(context.Background(), nil, from, to)
	require.NoError(t, err)
	assert.Empty(t, days)
}

func TestListMine(t *testing.T) {
	slots := new(MockSlotRepo)

	past := mondaySlot(t, 1, 8, slot.StatusFinalized, intPtr(1))
	future := slot.Slot{
		ID:        2,
		StartTime: time.Now().Add(48 * time.Hour).Truncate(time.Hour),
		Status:    slot.StatusConfirmed,
		MemberID:  intPtr(1),
	}
	slots.On("ListByMember", mock.Anything, 1).Return([]slot.Slot{past, future}, nil)

	finalizer := new(MockFinalizer)
	finalizer.On("AutoFinalize", mock.Anything).Return(int64(0), nil)

	svc := NewService(slots, new(MockStatsRepo), finalizer, nil, testLoc(t))

	mine, err := svc.ListMine(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.False(t, mine[0].Cancellable)
	assert.True(t, mine[1].Cancellable)
	assert.True(t, mine[0].Mine)

	// The sweep runs before the read so a just-elapsed slot never renders
	// as still confirmed.
	finalizer.AssertCalled(t, "AutoFinalize", mock.Anything)
}

func TestOccupancyByDay(t *testing.T) {
	stats := new(MockStatsRepo)
	stats.On("OccupancyByDay", mock.Anything, mock.Anything, mock.Anything).
		Return([]DayOccupancy{{Bucket: "2026-09-07", Confirmed: 3, Finalized: 10, Available: 7}}, nil)

	svc := NewService(new(MockSlotRepo), stats, nil, nil, testLoc(t))

	out, err := svc.OccupancyByDay(context.Background(), time.Now(), time.Now().AddDate(0, 0, 7))
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 3, out[0].Confirmed)
}
