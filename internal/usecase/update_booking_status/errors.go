package update_booking_status

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("update_booking_status: booking not found")

	// ErrAlreadyFinalized возвращается при попытке изменить
	// бронирование в финальном статусе
	ErrAlreadyFinalized = errors.New("update_booking_status: booking already finalized")

	// ErrStatusNotAllowed возвращается для статусов, которые не выставляются
	// напрямую: отмена и перенос идут через собственные операции
	ErrStatusNotAllowed = errors.New("update_booking_status: status is not allowed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking_status: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking_status: internal error")
)
