package bookings

import "errors"

var (
	// ErrInvalidStatus ошибка неизвестного статуса бронирования
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidTimeRange ошибка некорректного временного диапазона
	ErrInvalidTimeRange = errors.New("invalid time range")

	// ErrInvalidInput ошибка валидации входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("service: internal error")
)
