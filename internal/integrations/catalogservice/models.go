package catalogservice

// Service модель услуги из каталога
type Service struct {
	ID              int64    `json:"id"`
	BusinessID      int64    `json:"business_id"`
	Name            string   `json:"name"`
	Price           *float64 `json:"price"`
	DurationMinutes int      `json:"duration_minutes"`
	IsActive        bool     `json:"is_active"`
}

// ErrorResponse модель ошибки от каталога
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
