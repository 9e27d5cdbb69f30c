package get_available_slots

import "time"

// Request модель запроса на получение доступных слотов
type Request struct {
	Date time.Time // Дата, на которую запрашиваются слоты (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date  time.Time // Дата, на которую запрашивались слоты
	Slots []Slot    // Только доступные слоты; занятые опущены
}

// Slot модель слота с доступностью
type Slot struct {
	ID             int64
	Time           string // Диапазон времени, например "09:00-10:00"
	SlotType       string
	Price          int64
	AvailableSeats int
	TotalSeats     int
}
