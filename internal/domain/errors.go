package domain

import "errors"

var (
	// ErrInvalidTransition возвращается при недопустимом переходе статуса слота
	ErrInvalidTransition = errors.New("domain: invalid slot status transition")

	// ErrSlotBooked возвращается при попытке изменить время забронированного слота
	// Перенос забронированного слота выполняется только через reschedule бронирования
	ErrSlotBooked = errors.New("domain: slot is booked")

	// ErrInvalidTimeWindow возвращается для окна с end <= start
	ErrInvalidTimeWindow = errors.New("domain: invalid time window")

	// ErrDuplicateWeekday возвращается при добавлении второго правила на тот же день недели
	ErrDuplicateWeekday = errors.New("domain: rule item for this weekday already exists")

	// ErrDuplicateOverride возвращается при добавлении второго переопределения на ту же дату
	ErrDuplicateOverride = errors.New("domain: override for this date already exists")

	// ErrBreakOutsideWindow возвращается, когда перерыв выходит за рабочее окно
	ErrBreakOutsideWindow = errors.New("domain: break is outside the working window")

	// ErrBreaksOverlap возвращается при пересекающихся перерывах
	ErrBreaksOverlap = errors.New("domain: breaks overlap")

	// ErrOverrideWindowRequired возвращается для рабочего переопределения без окна
	ErrOverrideWindowRequired = errors.New("domain: working override requires a time window")

	// ErrOverrideWindowForbidden возвращается для нерабочего переопределения с окном
	ErrOverrideWindowForbidden = errors.New("domain: non-working override must not carry a time window")
)
