package schedules

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда расписание не найдено
	ErrScheduleNotFound = errors.New("schedule not found")

	// ErrOverrideNotFound возвращается, когда исключение на дату не найдено
	ErrOverrideNotFound = errors.New("override not found")

	// ErrInvalidTimezone возвращается при неизвестной IANA таймзоне
	ErrInvalidTimezone = errors.New("invalid timezone")

	// ErrValidation возвращается при нарушении инвариантов расписания
	ErrValidation = errors.New("schedule validation failed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
