package cancel_booking

import "errors"

var (
	// ErrBookingNotFound бронирование не найдено
	ErrBookingNotFound = errors.New("cancel_booking: booking not found")

	// ErrAlreadyFinalized бронирование уже находится в финальном статусе
	ErrAlreadyFinalized = errors.New("cancel_booking: booking already finalized")

	// ErrDataIntegrity слот и бронирование рассинхронизированы
	ErrDataIntegrity = errors.New("cancel_booking: slot and booking are out of sync")

	// ErrInvalidInput невалидные входные данные
	ErrInvalidInput = errors.New("cancel_booking: invalid input")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("cancel_booking: internal error")
)
