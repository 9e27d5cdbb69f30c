package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	userRepo "github.com/m04kA/SMC-SlotService/internal/infra/storage/user"
)

type bookingRepoMock struct {
	mock.Mock
}

func (m *bookingRepoMock) ListByUserWithSlots(ctx context.Context, userID int64) ([]*domain.BookingWithSlot, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.BookingWithSlot), args.Error(1)
}

func (m *bookingRepoMock) ListOccupantsBySlot(ctx context.Context, slotID int64) ([]*domain.SlotOccupant, error) {
	args := m.Called(ctx, slotID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.SlotOccupant), args.Error(1)
}

type userRepoMock struct {
	mock.Mock
}

func (m *userRepoMock) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

const seatsPerSlot = 6

func testDate() time.Time {
	return time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
}

func TestGetUserBookings_IndividualAmountRecomputed(t *testing.T) {
	t.Parallel()

	users := new(userRepoMock)
	users.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.User{ID: 1, Name: "Анна"}, nil).Once()

	bookings := new(bookingRepoMock)
	bookings.On("ListByUserWithSlots", mock.Anything, int64(1)).Return([]*domain.BookingWithSlot{
		{
			// Хранимая сумма 0 игнорируется: доля пересчитывается от цены
			Booking: domain.Booking{ID: 5, UserID: 1, SlotID: 10, NumberOfSeats: 1, Amount: 0},
			Slot: domain.Slot{
				ID: 10, Date: testDate(), Time: "09:00-10:00",
				Type: domain.SlotTypeIndividual, Price: 500,
			},
		},
	}, nil).Once()
	bookings.On("ListOccupantsBySlot", mock.Anything, int64(10)).Return([]*domain.SlotOccupant{
		{BookingID: 5, UserID: 1, UserName: "Анна"},
		{BookingID: 6, UserID: 2, UserName: "Борис"},
		{BookingID: 7, UserID: 3, UserName: "Вера"},
	}, nil).Once()

	svc := NewService(bookings, users, seatsPerSlot, nopLogger{})

	resp, err := svc.GetUserBookings(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)

	view := resp.Bookings[0]
	// 500 / 6 с округлением half-up
	assert.Equal(t, int64(83), view.Amount)
	assert.Equal(t, "Анна", view.BookedBy)

	// Сам пользователь исключен из списка со-бронирующих
	require.Len(t, view.OtherUsers, 2)
	assert.Equal(t, "Борис", view.OtherUsers[0].User)
	assert.Equal(t, int64(83), view.OtherUsers[0].SplitAmount)
	assert.Equal(t, "Вера", view.OtherUsers[1].User)
}

func TestGetUserBookings_GroupAmountTrusted(t *testing.T) {
	t.Parallel()

	users := new(userRepoMock)
	users.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.User{ID: 1, Name: "Анна"}, nil).Once()

	bookings := new(bookingRepoMock)
	bookings.On("ListByUserWithSlots", mock.Anything, int64(1)).Return([]*domain.BookingWithSlot{
		{
			Booking: domain.Booking{
				ID: 8, UserID: 1, SlotID: 20, NumberOfSeats: seatsPerSlot,
				Amount: 3000, IsLeader: true,
			},
			Slot: domain.Slot{
				ID: 20, Date: testDate(), Time: "11:00-12:00",
				Type: domain.SlotTypeGroup, Price: 3000, IsFull: true,
			},
		},
	}, nil).Once()

	svc := NewService(bookings, users, seatsPerSlot, nopLogger{})

	resp, err := svc.GetUserBookings(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)

	view := resp.Bookings[0]
	assert.Equal(t, int64(3000), view.Amount)
	assert.True(t, view.IsLeader)
	// Групповой слот эксклюзивен - со-бронирующих не бывает
	assert.Empty(t, view.OtherUsers)
	bookings.AssertNotCalled(t, "ListOccupantsBySlot")
}

func TestGetUserBookings_EmptyList(t *testing.T) {
	t.Parallel()

	users := new(userRepoMock)
	users.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.User{ID: 1, Name: "Анна"}, nil).Once()

	bookings := new(bookingRepoMock)
	bookings.On("ListByUserWithSlots", mock.Anything, int64(1)).
		Return([]*domain.BookingWithSlot{}, nil).Once()

	svc := NewService(bookings, users, seatsPerSlot, nopLogger{})

	resp, err := svc.GetUserBookings(context.Background(), 1)

	require.NoError(t, err)
	assert.Empty(t, resp.Bookings)
}

func TestGetUserBookings_UserNotFound(t *testing.T) {
	t.Parallel()

	users := new(userRepoMock)
	users.On("GetByID", mock.Anything, int64(99)).
		Return(nil, userRepo.ErrUserNotFound).Once()

	svc := NewService(new(bookingRepoMock), users, seatsPerSlot, nopLogger{})

	_, err := svc.GetUserBookings(context.Background(), 99)

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetUserBookings_InvalidUserID(t *testing.T) {
	t.Parallel()

	svc := NewService(new(bookingRepoMock), new(userRepoMock), seatsPerSlot, nopLogger{})

	_, err := svc.GetUserBookings(context.Background(), 0)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetUserBookings_RepositoryError(t *testing.T) {
	t.Parallel()

	users := new(userRepoMock)
	users.On("GetByID", mock.Anything, int64(1)).
		Return(&domain.User{ID: 1, Name: "Анна"}, nil).Once()

	bookings := new(bookingRepoMock)
	bookings.On("ListByUserWithSlots", mock.Anything, int64(1)).
		Return(nil, errors.New("db down")).Once()

	svc := NewService(bookings, users, seatsPerSlot, nopLogger{})

	_, err := svc.GetUserBookings(context.Background(), 1)

	assert.ErrorIs(t, err, ErrInternal)
}
