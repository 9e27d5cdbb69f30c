package domain

import "time"

// SlotType represents the booking mode of a slot
type SlotType string

const (
	// SlotTypeIndividual slot shared by up to SeatsPerSlot independent bookers
	SlotTypeIndividual SlotType = "individual"
	// SlotTypeGroup slot consumed entirely by a single booking
	SlotTypeGroup SlotType = "group"
)

// IsValid returns true if the slot type is one of the known values
func (t SlotType) IsValid() bool {
	return t == SlotTypeIndividual || t == SlotTypeGroup
}

// Slot represents a bookable time window on a given date
type Slot struct {
	ID        int64
	Date      time.Time
	Time      string // time range label, e.g. "09:00-10:00"
	Type      SlotType
	Price     int64
	IsFull    bool // authoritative gate for group slots
	CreatedAt time.Time
}

// SlotWithCount a slot together with its current booking count
type SlotWithCount struct {
	Slot
	BookingCount int
}

// IsAvailable applies the central availability rule:
// a group slot is available only while untouched (count == 0, full-flag unset),
// an individual slot is available while the booking count is below capacity
func (s *SlotWithCount) IsAvailable(capacity int) bool {
	switch s.Type {
	case SlotTypeGroup:
		return s.BookingCount == 0 && !s.IsFull
	case SlotTypeIndividual:
		return s.BookingCount < capacity
	default:
		return false
	}
}

// AvailableSeats returns the number of seats reported for an available slot.
// A group slot is all-or-nothing: while available it reports full capacity.
func (s *SlotWithCount) AvailableSeats(capacity int) int {
	switch s.Type {
	case SlotTypeGroup:
		if s.BookingCount == 0 && !s.IsFull {
			return capacity
		}
		return 0
	case SlotTypeIndividual:
		seats := capacity - s.BookingCount
		if seats < 0 {
			return 0
		}
		return seats
	default:
		return 0
	}
}

// TemplateEntry one entry of the fixed daily slot template.
// The template is configuration data, not logic: capacity and pattern
// can change without touching the admission rules.
type TemplateEntry struct {
	Time  string
	Type  SlotType
	Price int64
}

// SplitAmount returns the per-seat share of an individual slot price,
// rounded half-up. Prices are integer currency units.
func SplitAmount(price int64, seats int) int64 {
	if seats <= 0 {
		return 0
	}
	s := int64(seats)
	return (price*2 + s) / (s * 2)
}
