package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-SlotService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date  string          `json:"date"`
	Slots []AvailableSlot `json:"slots"`
}

// AvailableSlot модель слота с доступностью
type AvailableSlot struct {
	ID             int64  `json:"id"`
	Time           string `json:"time"`
	SlotType       string `json:"slotType"`
	Price          int64  `json:"price"`
	AvailableSeats int    `json:"availableSeats"`
	TotalSeats     int    `json:"totalSeats"`
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{Date: date}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			ID:             slot.ID,
			Time:           slot.Time,
			SlotType:       slot.SlotType,
			Price:          slot.Price,
			AvailableSeats: slot.AvailableSeats,
			TotalSeats:     slot.TotalSeats,
		}
	}

	return &AvailableSlotsResponse{
		Date:  resp.Date.Format(domain.DateFormat),
		Slots: slots,
	}
}
