package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotService/internal/domain"
)

type slotRepoMock struct {
	mock.Mock
}

func (m *slotRepoMock) EnsureForDate(ctx context.Context, date time.Time, template []domain.TemplateEntry) error {
	args := m.Called(ctx, date, template)
	return args.Error(0)
}

func (m *slotRepoMock) ListByDateWithCounts(ctx context.Context, date time.Time) ([]*domain.SlotWithCount, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.SlotWithCount), args.Error(1)
}

type txManagerStub struct{}

func (txManagerStub) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(repo *slotRepoMock, now time.Time) *UseCase {
	uc := NewUseCase(repo, txManagerStub{}, domain.DefaultTemplate, domain.DefaultSeatsPerSlot, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExecute_PastDateReturnsEmptyList(t *testing.T) {
	t.Parallel()

	repo := new(slotRepoMock)
	uc := newTestUseCase(repo, date(2025, time.June, 15))

	resp, err := uc.Execute(context.Background(), &Request{Date: date(2025, time.June, 14)})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	repo.AssertNotCalled(t, "EnsureForDate")
	repo.AssertNotCalled(t, "ListByDateWithCounts")
}

func TestExecute_TodayOnWesternClockIsNotPast(t *testing.T) {
	t.Parallel()

	// Часы сервера западнее UTC: тот же календарный день, раннее утро
	west := time.FixedZone("UTC-5", -5*60*60)
	now := time.Date(2025, time.June, 15, 1, 0, 0, 0, west)
	today := date(2025, time.June, 15)

	repo := new(slotRepoMock)
	repo.On("EnsureForDate", mock.Anything, today, domain.DefaultTemplate).Return(nil).Once()
	repo.On("ListByDateWithCounts", mock.Anything, today).
		Return([]*domain.SlotWithCount{
			{
				Slot:         domain.Slot{ID: 1, Time: "09:00-10:00", Type: domain.SlotTypeIndividual, Price: 600},
				BookingCount: 0,
			},
		}, nil).Once()

	uc := newTestUseCase(repo, now)

	resp, err := uc.Execute(context.Background(), &Request{Date: today})

	require.NoError(t, err)
	assert.Len(t, resp.Slots, 1)
	repo.AssertExpectations(t)
}

func TestIsDateInPast(t *testing.T) {
	t.Parallel()

	west := time.FixedZone("UTC-5", -5*60*60)
	east := time.FixedZone("UTC+3", 3*60*60)

	testCases := []struct {
		name string
		date time.Time
		now  time.Time
		past bool
	}{
		{
			name: "Yesterday",
			date: date(2025, time.June, 14),
			now:  date(2025, time.June, 15),
			past: true,
		},
		{
			name: "Same day",
			date: date(2025, time.June, 15),
			now:  time.Date(2025, time.June, 15, 23, 0, 0, 0, time.UTC),
			past: false,
		},
		{
			name: "Tomorrow",
			date: date(2025, time.June, 16),
			now:  date(2025, time.June, 15),
			past: false,
		},
		{
			name: "Same calendar day on western clock",
			date: date(2025, time.June, 15),
			now:  time.Date(2025, time.June, 15, 1, 0, 0, 0, west),
			past: false,
		},
		{
			name: "Same calendar day on eastern clock",
			date: date(2025, time.June, 15),
			now:  time.Date(2025, time.June, 15, 23, 0, 0, 0, east),
			past: false,
		},
		{
			name: "Previous day on western clock",
			date: date(2025, time.June, 14),
			now:  time.Date(2025, time.June, 15, 1, 0, 0, 0, west),
			past: true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.past, isDateInPast(tc.date, tc.now))
		})
	}
}

func TestExecute_ZeroDateIsInvalid(t *testing.T) {
	t.Parallel()

	repo := new(slotRepoMock)
	uc := newTestUseCase(repo, date(2025, time.June, 15))

	_, err := uc.Execute(context.Background(), &Request{})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_GeneratesTemplateAndFilters(t *testing.T) {
	t.Parallel()

	today := date(2025, time.June, 15)
	repo := new(slotRepoMock)

	listed := []*domain.SlotWithCount{
		{
			Slot:         domain.Slot{ID: 1, Time: "09:00-10:00", Type: domain.SlotTypeIndividual, Price: 600},
			BookingCount: 2,
		},
		{
			Slot:         domain.Slot{ID: 2, Time: "10:00-11:00", Type: domain.SlotTypeIndividual, Price: 600},
			BookingCount: 6,
		},
		{
			Slot:         domain.Slot{ID: 3, Time: "11:00-12:00", Type: domain.SlotTypeGroup, Price: 3000},
			BookingCount: 0,
		},
		{
			Slot:         domain.Slot{ID: 4, Time: "12:00-13:00", Type: domain.SlotTypeGroup, Price: 3000, IsFull: true},
			BookingCount: 1,
		},
	}

	repo.On("EnsureForDate", mock.Anything, today, domain.DefaultTemplate).Return(nil).Once()
	repo.On("ListByDateWithCounts", mock.Anything, today).Return(listed, nil).Once()

	uc := newTestUseCase(repo, today)

	resp, err := uc.Execute(context.Background(), &Request{Date: today})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 2)

	// Полный индивидуальный и занятый групповой слоты опущены
	assert.Equal(t, int64(1), resp.Slots[0].ID)
	assert.Equal(t, 4, resp.Slots[0].AvailableSeats)
	assert.Equal(t, domain.DefaultSeatsPerSlot, resp.Slots[0].TotalSeats)

	// Доступный групповой слот отдает полную вместимость
	assert.Equal(t, int64(3), resp.Slots[1].ID)
	assert.Equal(t, "group", resp.Slots[1].SlotType)
	assert.Equal(t, domain.DefaultSeatsPerSlot, resp.Slots[1].AvailableSeats)

	repo.AssertExpectations(t)
}

func TestExecute_EnsureFails(t *testing.T) {
	t.Parallel()

	today := date(2025, time.June, 15)
	repo := new(slotRepoMock)
	repo.On("EnsureForDate", mock.Anything, today, domain.DefaultTemplate).
		Return(errors.New("db down")).Once()

	uc := newTestUseCase(repo, today)

	_, err := uc.Execute(context.Background(), &Request{Date: today})

	assert.ErrorIs(t, err, ErrInternal)
	repo.AssertNotCalled(t, "ListByDateWithCounts")
}

func TestExecute_ListFails(t *testing.T) {
	t.Parallel()

	today := date(2025, time.June, 15)
	repo := new(slotRepoMock)
	repo.On("EnsureForDate", mock.Anything, today, domain.DefaultTemplate).Return(nil).Once()
	repo.On("ListByDateWithCounts", mock.Anything, today).
		Return(nil, errors.New("db down")).Once()

	uc := newTestUseCase(repo, today)

	_, err := uc.Execute(context.Background(), &Request{Date: today})

	assert.ErrorIs(t, err, ErrInternal)
}
