package reschedule_booking

import "errors"

var (
	// ErrBookingNotFound бронирование не найдено
	ErrBookingNotFound = errors.New("reschedule_booking: booking not found")

	// ErrSlotNotFound целевой слот не найден
	ErrSlotNotFound = errors.New("reschedule_booking: slot not found")

	// ErrAlreadyFinalized бронирование уже находится в финальном статусе
	ErrAlreadyFinalized = errors.New("reschedule_booking: booking already finalized")

	// ErrSameSlot целевой слот совпадает с текущим
	ErrSameSlot = errors.New("reschedule_booking: booking already occupies this slot")

	// ErrWorkerMismatch целевой слот принадлежит другому работнику
	ErrWorkerMismatch = errors.New("reschedule_booking: slot belongs to another worker")

	// ErrSlotNotAvailable целевой слот недоступен для бронирования
	ErrSlotNotAvailable = errors.New("reschedule_booking: slot is not available")

	// ErrDurationMismatch длительность целевого слота не совпадает с бронированием
	ErrDurationMismatch = errors.New("reschedule_booking: slot duration does not match booking")

	// ErrSlotConflict целевой слот занят конкурирующим запросом
	ErrSlotConflict = errors.New("reschedule_booking: slot was booked concurrently")

	// ErrDataIntegrity слот и бронирование рассинхронизированы
	ErrDataIntegrity = errors.New("reschedule_booking: slot and booking are out of sync")

	// ErrInvalidInput невалидные входные данные
	ErrInvalidInput = errors.New("reschedule_booking: invalid input")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("reschedule_booking: internal error")
)
