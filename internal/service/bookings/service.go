package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	userRepo "github.com/m04kA/SMC-SlotService/internal/infra/storage/user"
	"github.com/m04kA/SMC-SlotService/internal/service/bookings/models"
)

// Service читающий сервис выписки бронирований пользователя
type Service struct {
	bookingRepo  BookingRepository
	userRepo     UserRepository
	seatsPerSlot int
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	userRepo UserRepository,
	seatsPerSlot int,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		userRepo:     userRepo,
		seatsPerSlot: seatsPerSlot,
		logger:       logger,
	}
}

// GetUserBookings собирает выписку бронирований пользователя.
//
// Правило сумм намеренно асимметрично и повторяет поведение витрины:
// для индивидуальных слотов сумма ВСЕГДА пересчитывается от цены слота
// (доля места, округление half-up), хранимое значение игнорируется;
// для групповых бронирований хранимая сумма (полная цена слота)
// используется как есть.
func (s *Service) GetUserBookings(ctx context.Context, userID int64) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d", userID)

	if userID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	caller, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("GetUserBookings: user=%d not found", userID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetUserBookings: failed to get user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	items, err := s.bookingRepo.ListByUserWithSlots(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}

	views := make([]models.BookingView, 0, len(items))

	for _, item := range items {
		view := models.BookingView{
			BookingID: item.ID,
			Date:      item.Slot.Date,
			Time:      item.Slot.Time,
			SlotType:  string(item.Slot.Type),
			Price:     item.Slot.Price,
			Amount:    item.Amount,
			IsLeader:  item.IsLeader,
			BookedBy:  caller.Name,
		}

		if item.Slot.Type == domain.SlotTypeIndividual {
			view.Amount = domain.SplitAmount(item.Slot.Price, s.seatsPerSlot)
		}

		others, err := s.listOtherOccupants(ctx, item, userID)
		if err != nil {
			return nil, err
		}
		view.OtherUsers = others

		views = append(views, view)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(views), userID)

	return &models.BookingListResponse{Bookings: views}, nil
}

// listOtherOccupants собирает со-бронирующих слота без самого пользователя.
// Для группового слота список всегда пуст - слот эксклюзивен.
func (s *Service) listOtherOccupants(ctx context.Context, item *domain.BookingWithSlot, userID int64) ([]models.OccupantView, error) {
	others := make([]models.OccupantView, 0)

	if item.Slot.Type != domain.SlotTypeIndividual {
		return others, nil
	}

	occupants, err := s.bookingRepo.ListOccupantsBySlot(ctx, item.SlotID)
	if err != nil {
		s.logger.Error("GetUserBookings: failed to list occupants for slot=%d: %v", item.SlotID, err)
		return nil, fmt.Errorf("%w: failed to list occupants: %v", ErrInternal, err)
	}

	split := domain.SplitAmount(item.Slot.Price, s.seatsPerSlot)

	for _, occupant := range occupants {
		if occupant.UserID == userID {
			continue
		}
		others = append(others, models.OccupantView{
			User:        occupant.UserName,
			SplitAmount: split,
		})
	}

	return others, nil
}
