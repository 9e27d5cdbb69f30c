package get_user_bookings

import (
	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/internal/service/bookings/models"
)

// BookingListResponse HTTP ответ со списком бронирований пользователя
type BookingListResponse struct {
	Bookings []BookingItem `json:"bookings"`
}

// BookingItem одна запись выписки бронирований
type BookingItem struct {
	BookingID  int64          `json:"bookingId"`
	Date       string         `json:"date"`
	Time       string         `json:"time"`
	SlotType   string         `json:"slotType"`
	Price      int64          `json:"price"`
	Amount     int64          `json:"amount"`
	IsLeader   bool           `json:"isLeader"`
	BookedBy   string         `json:"bookedBy"`
	OtherUsers []OccupantItem `json:"otherUsers"`
}

// OccupantItem со-бронирующий того же слота
type OccupantItem struct {
	User        string `json:"user"`
	SplitAmount int64  `json:"splitAmount"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.BookingListResponse) *BookingListResponse {
	bookings := make([]BookingItem, len(resp.Bookings))
	for i, b := range resp.Bookings {
		others := make([]OccupantItem, len(b.OtherUsers))
		for j, o := range b.OtherUsers {
			others[j] = OccupantItem{
				User:        o.User,
				SplitAmount: o.SplitAmount,
			}
		}

		bookings[i] = BookingItem{
			BookingID:  b.BookingID,
			Date:       b.Date.Format(domain.DateFormat),
			Time:       b.Time,
			SlotType:   b.SlotType,
			Price:      b.Price,
			Amount:     b.Amount,
			IsLeader:   b.IsLeader,
			BookedBy:   b.BookedBy,
			OtherUsers: others,
		}
	}

	return &BookingListResponse{Bookings: bookings}
}
