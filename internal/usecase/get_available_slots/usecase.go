package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SlotService/internal/domain"
)

// UseCase use case получения доступных слотов на дату.
// На первый запрос даты лениво материализует дневной шаблон слотов;
// генерация и чтение счетчиков выполняются в одной транзакции,
// уникальный индекс (date, time) сводит конкурентные генерации к одной.
type UseCase struct {
	slotRepo     SlotRepository
	txManager    TransactionManager
	template     []domain.TemplateEntry
	seatsPerSlot int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	txManager TransactionManager,
	template []domain.TemplateEntry,
	seatsPerSlot int,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		txManager:    txManager,
		template:     template,
		seatsPerSlot: seatsPerSlot,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. На прошедшие даты слоты не отдаются - пустой список, не ошибка
	if isDateInPast(req.Date, uc.timeProvider.Now()) {
		uc.logger.Info("GetAvailableSlots: date %s is in the past, returning empty list",
			req.Date.Format(domain.DateFormat))
		return &Response{Date: req.Date, Slots: []Slot{}}, nil
	}

	var slots []*domain.SlotWithCount

	// 3. Генерация шаблона и чтение счетчиков в одной транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := uc.slotRepo.EnsureForDate(txCtx, req.Date, uc.template); err != nil {
			return fmt.Errorf("%w: failed to ensure slots: %v", ErrInternal, err)
		}

		listed, err := uc.slotRepo.ListByDateWithCounts(txCtx, req.Date)
		if err != nil {
			return fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
		}

		slots = listed
		return nil
	})

	if err != nil {
		uc.logger.Error("GetAvailableSlots: %v", err)
		return nil, err
	}

	// 4. Фильтруем занятые слоты и считаем доступные места
	available := calculateAvailability(slots, uc.seatsPerSlot)

	uc.logger.Info("GetAvailableSlots: %d of %d slots available for date=%s",
		len(available), len(slots), req.Date.Format(domain.DateFormat))

	return &Response{
		Date:  req.Date,
		Slots: available,
	}, nil
}
