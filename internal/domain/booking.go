package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	BookingStatusPendingConfirmation BookingStatus = "pending_confirmation"
	BookingStatusConfirmed           BookingStatus = "confirmed"
	BookingStatusRescheduled         BookingStatus = "rescheduled"
	BookingStatusCompleted           BookingStatus = "completed"
	BookingStatusNoShow              BookingStatus = "no_show"
	BookingStatusCancelledByCustomer BookingStatus = "cancelled_by_customer"
	BookingStatusCancelledByVendor   BookingStatus = "cancelled_by_vendor"
)

// CancelActor identifies who cancels a booking
type CancelActor string

const (
	CancelActorCustomer CancelActor = "customer"
	CancelActorVendor   CancelActor = "vendor"
)

// Booking represents a customer booking occupying exactly one availability slot.
// StartsAt/EndsAt are copied from the slot at booking (or reschedule) time.
type Booking struct {
	ID         int64
	WorkerID   int64
	BusinessID int64
	ServiceID  int64
	CustomerID int64
	SlotID     int64
	StartsAt   time.Time // UTC, copied from the slot
	EndsAt     time.Time // UTC, copied from the slot
	Status     BookingStatus

	// Denormalized data for history
	ServiceName  string
	ServicePrice float64

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsTerminal returns true if the booking reached a final state.
// Terminal bookings accept no further status or slot-link mutation.
func (b *Booking) IsTerminal() bool {
	switch b.Status {
	case BookingStatusCompleted, BookingStatusNoShow,
		BookingStatusCancelledByCustomer, BookingStatusCancelledByVendor:
		return true
	default:
		return false
	}
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return !b.IsTerminal()
}

// CanBeRescheduled returns true if the booking can be moved to another slot
func (b *Booking) CanBeRescheduled() bool {
	return !b.IsTerminal()
}

// CancelStatusFor maps the cancelling actor to the booking status
func CancelStatusFor(actor CancelActor) BookingStatus {
	if actor == CancelActorVendor {
		return BookingStatusCancelledByVendor
	}
	return BookingStatusCancelledByCustomer
}

// ValidBookingStatus returns true for a known booking status value
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingStatusPendingConfirmation, BookingStatusConfirmed, BookingStatusRescheduled,
		BookingStatusCompleted, BookingStatusNoShow,
		BookingStatusCancelledByCustomer, BookingStatusCancelledByVendor:
		return true
	default:
		return false
	}
}
