package domain

import "time"

// Default configuration values
const (
	DefaultSlotDurationMinutes = 30
	DefaultMaxRangeDays        = 365 // 1 year
)

// Business validation constants
const (
	MinSlotDurationMinutes      = 5
	MaxSlotDurationMinutes      = 480 // 8 hours
	MaxCancellationReasonLength = 500
	MaxBreakNameLength          = 100
	MaxOverrideReasonLength     = 255
)

// FixedSlotFetchBuffer расширение диапазона выборки фиксированных слотов
// для отлова пересечений на границах диапазона регенерации
const FixedSlotFetchBuffer = time.Hour

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// TerminalBookingStatuses список финальных статусов бронирования
// Финальный статус запрещает любые дальнейшие переходы и смену слота
var TerminalBookingStatuses = []BookingStatus{
	BookingStatusCompleted,
	BookingStatusNoShow,
	BookingStatusCancelledByCustomer,
	BookingStatusCancelledByVendor,
}

// ActiveBookingStatuses список активных статусов бронирования
var ActiveBookingStatuses = []BookingStatus{
	BookingStatusPendingConfirmation,
	BookingStatusConfirmed,
	BookingStatusRescheduled,
}
