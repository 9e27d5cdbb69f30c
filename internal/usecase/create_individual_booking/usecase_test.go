package create_individual_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SlotService/internal/infra/storage/booking"
	slotRepo "github.com/m04kA/SMC-SlotService/internal/infra/storage/slot"
)

type slotRepoMock struct {
	mock.Mock
}

func (m *slotRepoMock) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Slot), args.Error(1)
}

type bookingRepoMock struct {
	mock.Mock
}

func (m *bookingRepoMock) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, booking)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *bookingRepoMock) CountBySlot(ctx context.Context, slotID int64) (int, error) {
	args := m.Called(ctx, slotID)
	return args.Int(0), args.Error(1)
}

func (m *bookingRepoMock) ExistsByUserAndSlot(ctx context.Context, userID, slotID int64) (bool, error) {
	args := m.Called(ctx, userID, slotID)
	return args.Bool(0), args.Error(1)
}

type txManagerStub struct{}

func (txManagerStub) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

const capacity = 6

func individualSlot() *domain.Slot {
	return &domain.Slot{
		ID:    10,
		Date:  time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC),
		Time:  "09:00-10:00",
		Type:  domain.SlotTypeIndividual,
		Price: 600,
	}
}

func TestExecute_Success(t *testing.T) {
	t.Parallel()

	slots := new(slotRepoMock)
	bookings := new(bookingRepoMock)

	slots.On("GetByID", mock.Anything, int64(10)).Return(individualSlot(), nil).Once()
	bookings.On("ExistsByUserAndSlot", mock.Anything, int64(1), int64(10)).Return(false, nil).Once()
	bookings.On("CountBySlot", mock.Anything, int64(10)).Return(2, nil).Once()
	bookings.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.UserID == 1 && b.SlotID == 10 && b.NumberOfSeats == 1 && b.Amount == 0 && !b.IsLeader
	})).Return(&domain.Booking{ID: 77, UserID: 1, SlotID: 10, NumberOfSeats: 1}, nil).Once()

	uc := NewUseCase(slots, bookings, txManagerStub{}, capacity, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, SlotID: 10})

	require.NoError(t, err)
	assert.Equal(t, int64(77), resp.BookingID)
	assert.Equal(t, "09:00-10:00", resp.Time)
	assert.Equal(t, 1, resp.NumberOfSeats)

	slots.AssertExpectations(t)
	bookings.AssertExpectations(t)
}

func TestExecute_InvalidInput(t *testing.T) {
	t.Parallel()

	uc := NewUseCase(new(slotRepoMock), new(bookingRepoMock), txManagerStub{}, capacity, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 0, SlotID: 10})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{UserID: 1, SlotID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_SlotNotFound(t *testing.T) {
	t.Parallel()

	slots := new(slotRepoMock)
	slots.On("GetByID", mock.Anything, int64(10)).Return(nil, slotRepo.ErrSlotNotFound).Once()

	uc := NewUseCase(slots, new(bookingRepoMock), txManagerStub{}, capacity, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 1, SlotID: 10})

	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_GroupSlotRejected(t *testing.T) {
	t.Parallel()

	slot := individualSlot()
	slot.Type = domain.SlotTypeGroup

	slots := new(slotRepoMock)
	slots.On("GetByID", mock.Anything, int64(10)).Return(slot, nil).Once()

	bookings := new(bookingRepoMock)
	uc := NewUseCase(slots, bookings, txManagerStub{}, capacity, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 1, SlotID: 10})

	assert.ErrorIs(t, err, ErrInvalidSlotType)
	bookings.AssertNotCalled(t, "Create")
}

func TestExecute_DuplicateBooking(t *testing.T) {
	t.Parallel()

	slots := new(slotRepoMock)
	slots.On("GetByID", mock.Anything, int64(10)).Return(individualSlot(), nil).Once()

	bookings := new(bookingRepoMock)
	bookings.On("ExistsByUserAndSlot", mock.Anything, int64(1), int64(10)).Return(true, nil).Once()

	uc := NewUseCase(slots, bookings, txManagerStub{}, capacity, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 1, SlotID: 10})

	assert.ErrorIs(t, err, ErrDuplicateBooking)
	bookings.AssertNotCalled(t, "Create")
}

func TestExecute_SlotFull(t *testing.T) {
	t.Parallel()

	slots := new(slotRepoMock)
	slots.On("GetByID", mock.Anything, int64(10)).Return(individualSlot(), nil).Once()

	bookings := new(bookingRepoMock)
	bookings.On("ExistsByUserAndSlot", mock.Anything, int64(1), int64(10)).Return(false, nil).Once()
	bookings.On("CountBySlot", mock.Anything, int64(10)).Return(capacity, nil).Once()

	uc := NewUseCase(slots, bookings, txManagerStub{}, capacity, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 1, SlotID: 10})

	assert.ErrorIs(t, err, ErrSlotFull)
	bookings.AssertNotCalled(t, "Create")
}

func TestExecute_RaceLostOnUniqueIndex(t *testing.T) {
	t.Parallel()

	slots := new(slotRepoMock)
	slots.On("GetByID", mock.Anything, int64(10)).Return(individualSlot(), nil).Once()

	bookings := new(bookingRepoMock)
	bookings.On("ExistsByUserAndSlot", mock.Anything, int64(1), int64(10)).Return(false, nil).Once()
	bookings.On("CountBySlot", mock.Anything, int64(10)).Return(2, nil).Once()
	bookings.On("Create", mock.Anything, mock.Anything).Return(nil, bookingRepo.ErrDuplicateBooking).Once()

	uc := NewUseCase(slots, bookings, txManagerStub{}, capacity, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 1, SlotID: 10})

	assert.ErrorIs(t, err, ErrDuplicateBooking)
}

func TestExecute_StorageError(t *testing.T) {
	t.Parallel()

	slots := new(slotRepoMock)
	slots.On("GetByID", mock.Anything, int64(10)).Return(nil, errors.New("db down")).Once()

	uc := NewUseCase(slots, new(bookingRepoMock), txManagerStub{}, capacity, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 1, SlotID: 10})

	assert.ErrorIs(t, err, ErrInternal)
}
