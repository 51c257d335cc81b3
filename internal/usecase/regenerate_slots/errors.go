package regenerate_slots

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда расписание не найдено
	// или не принадлежит указанному работнику/бизнесу
	ErrScheduleNotFound = errors.New("regenerate_slots: schedule not found")

	// ErrInvalidTimezone возвращается, когда таймзона расписания не разрешается
	ErrInvalidTimezone = errors.New("regenerate_slots: invalid schedule timezone")

	// ErrInvalidRange возвращается при некорректном диапазоне дат
	// (конец раньше начала либо превышен настроенный максимум)
	ErrInvalidRange = errors.New("regenerate_slots: invalid date range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("regenerate_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("regenerate_slots: internal error")
)
