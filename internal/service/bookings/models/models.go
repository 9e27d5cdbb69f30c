package models

import "time"

// BookingView одна строка выписки бронирований пользователя
type BookingView struct {
	BookingID  int64          `json:"bookingId"`
	Date       time.Time      `json:"-"`
	Time       string         `json:"time"`
	SlotType   string         `json:"slotType"`
	Price      int64          `json:"price"`
	Amount     int64          `json:"amount"`
	IsLeader   bool           `json:"isLeader"`
	BookedBy   string         `json:"bookedBy"`
	OtherUsers []OccupantView `json:"otherUsers"`
}

// OccupantView со-бронирующий того же слота с его долей стоимости
type OccupantView struct {
	User        string `json:"user"`
	SplitAmount int64  `json:"splitAmount"`
}

// BookingListResponse список бронирований пользователя
type BookingListResponse struct {
	Bookings []BookingView `json:"bookings"`
}
