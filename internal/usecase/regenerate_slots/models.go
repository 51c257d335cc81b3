package regenerate_slots

import "time"

// Request модель запроса на регенерацию слотов
type Request struct {
	WorkerID            int64     // ID работника
	BusinessID          int64     // ID бизнеса
	ScheduleID          *int64    // ID расписания (nil - расписание работника по умолчанию)
	StartDate           time.Time // Начало диапазона (дата без времени, включительно)
	EndDate             time.Time // Конец диапазона (дата без времени, включительно)
	SlotDurationMinutes int       // Длительность слота в минутах
	OverwriteGenerated  bool      // Удалять ли устаревшие сгенерированные незабронированные слоты
}

// Response модель ответа регенерации
type Response struct {
	ScheduleID   int64 // ID использованного расписания
	CreatedCount int   // Количество созданных слотов
	DeletedCount int64 // Количество удаленных устаревших слотов
}
