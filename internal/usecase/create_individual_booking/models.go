package create_individual_booking

import "time"

// Request модель запроса на индивидуальное бронирование
type Request struct {
	UserID int64
	SlotID int64
}

// Response модель подтвержденного бронирования
type Response struct {
	BookingID     int64
	UserID        int64
	SlotID        int64
	Date          time.Time
	Time          string
	NumberOfSeats int
	CreatedAt     time.Time
}
