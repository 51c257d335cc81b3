package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	SlotID     int64 // ID слота доступности
	BusinessID int64 // ID бизнеса (слот должен принадлежать ему)
	ServiceID  int64 // ID услуги из каталога
	CustomerID int64 // ID клиента
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64     // ID созданного бронирования
	WorkerID   int64     // ID работника
	BusinessID int64     // ID бизнеса
	ServiceID  int64     // ID услуги
	CustomerID int64     // ID клиента
	SlotID     int64     // ID занятого слота
	StartsAt   time.Time // Начало (UTC, скопировано из слота)
	EndsAt     time.Time // Конец (UTC, скопировано из слота)
	Status     string    // Статус бронирования

	// Денормализованные данные услуги
	ServiceName  string  // Название услуги
	ServicePrice float64 // Цена услуги на момент бронирования

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
