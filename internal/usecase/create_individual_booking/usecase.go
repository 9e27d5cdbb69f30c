package create_individual_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SlotService/internal/infra/storage/booking"
	slotRepo "github.com/m04kA/SMC-SlotService/internal/infra/storage/slot"
)

// UseCase use case допуска индивидуального бронирования.
// Последовательность чтение-проверка-запись выполняется в одной
// сериализуемой транзакции с блокировкой строки слота, чтобы две
// конкурентные попытки не увидели одновременно "место есть".
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

// Execute выполняет use case индивидуального бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateIndividualBooking: user=%d, slot=%d", req.UserID, req.SlotID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateIndividualBooking: validation failed: %v", err)
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

		// 2.2. Бронировать по одному месту можно только индивидуальный слот
		if slot.Type != domain.SlotTypeIndividual {
			return ErrInvalidSlotType
		}

		// 2.3. Повторное бронирование того же слота запрещено,
		// даже если свободные места еще есть
		exists, err := uc.bookingRepo.ExistsByUserAndSlot(txCtx, req.UserID, req.SlotID)
		if err != nil {
			return fmt.Errorf("%w: failed to check existing booking: %v", ErrInternal, err)
		}
		if exists {
			return ErrDuplicateBooking
		}

		// 2.4. Проверяем вместимость по текущему счетчику бронирований
		count, err := uc.bookingRepo.CountBySlot(txCtx, req.SlotID)
		if err != nil {
			return fmt.Errorf("%w: failed to count bookings: %v", ErrInternal, err)
		}
		if count >= uc.capacity {
			uc.logger.Warn("CreateIndividualBooking: slot=%d is full, %d/%d seats taken",
				req.SlotID, count, uc.capacity)
			return ErrSlotFull
		}

		// 2.5. Создаем бронирование на одно место.
		// Сумма не фиксируется: выписка всегда пересчитывает долю
		// индивидуального бронирования от цены слота
		booking := &domain.Booking{
			UserID:        req.UserID,
			SlotID:        req.SlotID,
			NumberOfSeats: 1,
			Amount:        0,
			IsLeader:      false,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Индекс (user_id, slot_id) - последняя линия защиты от гонки
			if errors.Is(err, bookingRepo.ErrDuplicateBooking) {
				return ErrDuplicateBooking
			}
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrInternal) {
			uc.logger.Error("CreateIndividualBooking: %v", err)
		}
		return nil, err
	}

	uc.logger.Info("CreateIndividualBooking: successfully created booking id=%d for user=%d, slot=%d",
		result.ID, req.UserID, req.SlotID)

	return &Response{
		BookingID:     result.ID,
		UserID:        result.UserID,
		SlotID:        result.SlotID,
		Date:          slot.Date,
		Time:          slot.Time,
		NumberOfSeats: result.NumberOfSeats,
		CreatedAt:     result.CreatedAt,
	}, nil
}
