package create_individual_booking

import (
	"time"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	createIndividualBooking "github.com/m04kA/SMC-SlotService/internal/usecase/create_individual_booking"
)

// CreateBookingRequest HTTP запрос на индивидуальное бронирование
type CreateBookingRequest struct {
	SlotID int64 `json:"slotId"`
}

// CreateBookingResponse HTTP ответ с подтвержденным бронированием
type CreateBookingResponse struct {
	BookingID     int64  `json:"bookingId"`
	SlotID        int64  `json:"slotId"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	NumberOfSeats int    `json:"numberOfSeats"`
	CreatedAt     string `json:"createdAt"`
}

// ToUseCaseRequest создает запрос use case из HTTP запроса
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) *createIndividualBooking.Request {
	return &createIndividualBooking.Request{
		UserID: userID,
		SlotID: r.SlotID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createIndividualBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		BookingID:     resp.BookingID,
		SlotID:        resp.SlotID,
		Date:          resp.Date.Format(domain.DateFormat),
		Time:          resp.Time,
		NumberOfSeats: resp.NumberOfSeats,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
