package reschedule_booking

import "time"

// Request запрос на перенос бронирования на другой слот
type Request struct {
	BookingID int64
	NewSlotID int64
}

// Response данные перенесенного бронирования
type Response struct {
	ID         int64
	WorkerID   int64
	BusinessID int64
	SlotID     int64
	StartsAt   time.Time
	EndsAt     time.Time
	Status     string
	UpdatedAt  time.Time
}
