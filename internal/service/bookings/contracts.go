package bookings

import (
	"context"

	"github.com/m04kA/SMC-SlotService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListByUserWithSlots(ctx context.Context, userID int64) ([]*domain.BookingWithSlot, error)
	ListOccupantsBySlot(ctx context.Context, slotID int64) ([]*domain.SlotOccupant, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
