package create_group_booking

import (
	"time"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	createGroupBooking "github.com/m04kA/SMC-SlotService/internal/usecase/create_group_booking"
)

// CreateBookingRequest HTTP запрос на групповое бронирование
type CreateBookingRequest struct {
	SlotID int64 `json:"slotId"`
}

// CreateBookingResponse HTTP ответ с подтвержденным групповым бронированием
type CreateBookingResponse struct {
	BookingID     int64  `json:"bookingId"`
	SlotID        int64  `json:"slotId"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	NumberOfSeats int    `json:"numberOfSeats"`
	Amount        int64  `json:"amount"`
	CreatedAt     string `json:"createdAt"`
}

// ToUseCaseRequest создает запрос use case из HTTP запроса
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) *createGroupBooking.Request {
	return &createGroupBooking.Request{
		UserID: userID,
		SlotID: r.SlotID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createGroupBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		BookingID:     resp.BookingID,
		SlotID:        resp.SlotID,
		Date:          resp.Date.Format(domain.DateFormat),
		Time:          resp.Time,
		NumberOfSeats: resp.NumberOfSeats,
		Amount:        resp.Amount,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
