package create_group_booking

import "time"

// Request модель запроса на групповое бронирование
type Request struct {
	UserID int64
	SlotID int64
}

// Response модель подтвержденного группового бронирования
type Response struct {
	BookingID     int64
	UserID        int64
	SlotID        int64
	Date          time.Time
	Time          string
	NumberOfSeats int
	Amount        int64
	CreatedAt     time.Time
}
