package create_booking

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	// или не принадлежит указанному бизнесу
	ErrSlotNotFound = errors.New("create_booking: slot not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrSlotNotAvailable возвращается, когда слот не в статусе available
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrDurationMismatch возвращается, когда длительность слота
	// не совпадает с длительностью услуги
	ErrDurationMismatch = errors.New("create_booking: slot duration does not match service duration")

	// ErrSlotConflict возвращается, когда конкурирующая запись заняла слот
	// между проверкой и фиксацией
	ErrSlotConflict = errors.New("create_booking: slot was booked concurrently")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
