package domain

import "time"

// SlotStatus represents the status of an availability slot
type SlotStatus string

const (
	SlotStatusAvailable   SlotStatus = "available"
	SlotStatusPending     SlotStatus = "pending"
	SlotStatusBooked      SlotStatus = "booked"
	SlotStatusUnavailable SlotStatus = "unavailable"
	SlotStatusBreak       SlotStatus = "break"
)

// AvailabilitySlot is a concrete bookable time window of a worker, stored as
// absolute UTC instants. Slots are either generated by schedule regeneration
// (GeneratingScheduleID set) or created manually by an operator.
//
// Status and BookingID change only through the transition methods below,
// which keep the invariant BookingID != nil <=> Status == Booked.
type AvailabilitySlot struct {
	ID                   int64
	WorkerID             int64
	BusinessID           int64
	StartsAt             time.Time // UTC
	EndsAt               time.Time // UTC
	Status               SlotStatus
	GeneratingScheduleID *int64
	BookingID            *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsGenerated returns true if the slot was produced by schedule regeneration
func (s *AvailabilitySlot) IsGenerated() bool {
	return s.GeneratingScheduleID != nil
}

// IsFixed returns true if regeneration must not delete or overwrite the slot:
// anything manually created, or anything no longer plainly available
// (booked, held, operator-marked unavailable or break).
func (s *AvailabilitySlot) IsFixed() bool {
	return !s.IsGenerated() || s.Status != SlotStatusAvailable
}

// Overlaps reports whether the slot intersects the half-open interval
// [start, end).
func (s *AvailabilitySlot) Overlaps(start, end time.Time) bool {
	return s.StartsAt.Before(end) && s.EndsAt.After(start)
}

// Book transitions Available -> Booked and links the booking.
func (s *AvailabilitySlot) Book(bookingID int64) error {
	if s.Status != SlotStatusAvailable {
		return ErrInvalidTransition
	}
	s.Status = SlotStatusBooked
	s.BookingID = &bookingID
	return nil
}

// Hold transitions Available -> Pending, reserving the slot without a booking.
func (s *AvailabilitySlot) Hold() error {
	if s.Status != SlotStatusAvailable {
		return ErrInvalidTransition
	}
	s.Status = SlotStatusPending
	return nil
}

// Release transitions Booked or Pending -> Available and clears the booking link.
func (s *AvailabilitySlot) Release() error {
	if s.Status != SlotStatusBooked && s.Status != SlotStatusPending {
		return ErrInvalidTransition
	}
	s.Status = SlotStatusAvailable
	s.BookingID = nil
	return nil
}

// MarkUnavailable transitions any non-booked status -> Unavailable.
func (s *AvailabilitySlot) MarkUnavailable() error {
	if s.Status == SlotStatusBooked {
		return ErrInvalidTransition
	}
	s.Status = SlotStatusUnavailable
	s.BookingID = nil
	return nil
}

// MarkBreak transitions any non-booked status -> Break.
func (s *AvailabilitySlot) MarkBreak() error {
	if s.Status == SlotStatusBooked {
		return ErrInvalidTransition
	}
	s.Status = SlotStatusBreak
	s.BookingID = nil
	return nil
}

// Reopen transitions Unavailable or Break -> Available.
// A booked slot is never reopened directly: freeing it goes through the
// booking's own cancel or reschedule path.
func (s *AvailabilitySlot) Reopen() error {
	if s.Status != SlotStatusUnavailable && s.Status != SlotStatusBreak {
		return ErrInvalidTransition
	}
	s.Status = SlotStatusAvailable
	s.BookingID = nil
	return nil
}

// UpdateTime changes the slot's window. Disallowed while Booked: time changes
// for booked slots go through booking reschedule, which moves the booking to
// a different slot instead of mutating this one.
func (s *AvailabilitySlot) UpdateTime(newStart, newEnd time.Time) error {
	if s.Status == SlotStatusBooked {
		return ErrSlotBooked
	}
	if !newEnd.After(newStart) {
		return ErrInvalidTimeWindow
	}
	s.StartsAt = newStart.UTC()
	s.EndsAt = newEnd.UTC()
	return nil
}

// ValidSlotStatus returns true for a known slot status value
func ValidSlotStatus(s SlotStatus) bool {
	switch s {
	case SlotStatusAvailable, SlotStatusPending, SlotStatusBooked, SlotStatusUnavailable, SlotStatusBreak:
		return true
	default:
		return false
	}
}
