package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SlotService/internal/domain"
)

// calculateAvailability применяет правило доступности к слотам дня.
// Групповой слот доступен только пока не тронут: одно бронирование
// потребляет его целиком, и из выдачи он исчезает. Индивидуальный слот
// отдает остаток мест, пока счетчик бронирований меньше вместимости.
// Недоступные слоты опускаются, а не возвращаются с нулем мест.
func calculateAvailability(slots []*domain.SlotWithCount, seatsPerSlot int) []Slot {
	result := make([]Slot, 0, len(slots))

	for _, slot := range slots {
		if !slot.IsAvailable(seatsPerSlot) {
			continue
		}

		result = append(result, Slot{
			ID:             slot.ID,
			Time:           slot.Time,
			SlotType:       string(slot.Type),
			Price:          slot.Price,
			AvailableSeats: slot.AvailableSeats(seatsPerSlot),
			TotalSeats:     seatsPerSlot,
		})
	}

	return result
}

// isDateInPast проверяет, что дата раньше текущего календарного дня.
// Обе стороны приводятся к зоне запрошенной даты: сравнение в разных
// зонах считало бы сегодняшний день прошедшим на части суток
func isDateInPast(date, now time.Time) bool {
	nowInLoc := now.In(date.Location())
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(nowInLoc.Year(), nowInLoc.Month(), nowInLoc.Day(), 0, 0, 0, 0, date.Location())
	return dateOnly.Before(nowOnly)
}
