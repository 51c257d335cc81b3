package update_booking_status

import "time"

// Request модель запроса на смену статуса бронирования
type Request struct {
	BookingID int64  // ID бронирования
	Status    string // Целевой статус: confirmed, completed, no_show
}

// Response модель ответа с обновленным бронированием
type Response struct {
	ID         int64     // ID бронирования
	WorkerID   int64     // ID работника
	BusinessID int64     // ID бизнеса
	SlotID     int64     // ID слота
	Status     string    // Новый статус
	UpdatedAt  time.Time // Время обновления
}
