package domain

import "time"

// Booking represents a committed reservation of seats in a slot.
// Bookings are immutable once created and are never deleted.
type Booking struct {
	ID            int64
	UserID        int64
	SlotID        int64
	NumberOfSeats int
	// Amount as stored. For group bookings this is the full slot price and
	// is trusted as-is; for individual bookings the ledger reader recomputes
	// the per-seat split from the slot price instead (see SplitAmount).
	Amount    int64
	IsLeader  bool
	CreatedAt time.Time
}

// IsGroup returns true if the booking consumed a whole slot
func (b *Booking) IsGroup() bool {
	return b.NumberOfSeats > 1
}

// BookingWithSlot a booking joined with its slot attributes
type BookingWithSlot struct {
	Booking
	Slot Slot
}

// SlotOccupant another booker of the same slot, used for co-occupant views
type SlotOccupant struct {
	BookingID int64
	UserID    int64
	UserName  string
}
