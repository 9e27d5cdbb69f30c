package create_group_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	slotRepo "github.com/m04kA/SMC-SlotService/internal/infra/storage/slot"
)

// UseCase use case допуска группового бронирования.
// Групповой слот эксклюзивен: единственное бронирование потребляет все
// места. Авторитетный затвор - флаг is_full, а не счетчик бронирований;
// вставка бронирования и выставление флага происходят в одной
// сериализуемой транзакции, частичный эффект невозможен.
type UseCase struct {
	slotRepo    SlotRepository
	bookingRepo BookingRepository
	txManager   TransactionManager
	capacity    int
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	capacity int,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:    slotRepo,
		bookingRepo: bookingRepo,
		txManager:   txManager,
		capacity:    capacity,
		logger:      logger,
	}
}

// Execute выполняет use case группового бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateGroupBooking: user=%d, slot=%d", req.UserID, req.SlotID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateGroupBooking: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking
	var slot *domain.Slot

	// 2. Допуск в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем слот с блокировкой строки
		s, err := uc.slotRepo.GetByID(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				return ErrSlotNotFound
			}
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}
		slot = s

		// 2.2. Слот должен быть групповым и еще не занятым
		if slot.Type != domain.SlotTypeGroup || slot.IsFull {
			uc.logger.Warn("CreateGroupBooking: slot=%d not available (type=%s, is_full=%t)",
				req.SlotID, slot.Type, slot.IsFull)
			return ErrSlotUnavailable
		}

		// 2.3. Создаем бронирование на все места по цене слота
		booking := &domain.Booking{
			UserID:        req.UserID,
			SlotID:        req.SlotID,
			NumberOfSeats: uc.capacity,
			Amount:        slot.Price,
			IsLeader:      true,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 2.4. Помечаем слот занятым. Условный UPDATE проверяет is_full
		// еще раз: если флаг успел выставиться, транзакция откатывается
		// вместе со вставленным бронированием
		if err := uc.slotRepo.MarkFull(txCtx, req.SlotID); err != nil {
			if errors.Is(err, slotRepo.ErrSlotAlreadyFull) {
				return ErrSlotUnavailable
			}
			return fmt.Errorf("%w: failed to mark slot full: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrInternal) {
			uc.logger.Error("CreateGroupBooking: %v", err)
		}
		return nil, err
	}

	uc.logger.Info("CreateGroupBooking: successfully created booking id=%d for user=%d, slot=%d",
		result.ID, req.UserID, req.SlotID)

	return &Response{
		BookingID:     result.ID,
		UserID:        result.UserID,
		SlotID:        result.SlotID,
		Date:          slot.Date,
		Time:          slot.Time,
		NumberOfSeats: result.NumberOfSeats,
		Amount:        result.Amount,
		CreatedAt:     result.CreatedAt,
	}, nil
}
