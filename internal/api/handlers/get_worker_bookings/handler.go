package get_worker_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/bookings"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/bookings/models"
)

const (
	msgInvalidWorkerID  = "некорректный ID работника"
	msgInvalidDateRange = "некорректный диапазон дат, ожидается from=YYYY-MM-DD&to=YYYY-MM-DD"
	msgInvalidStatus    = "некорректный статус бронирования"
	msgInvalidFilter    = "фильтры status и active взаимоисключающие"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/workers/{workerId}/bookings?from=YYYY-MM-DD&to=YYYY-MM-DD&status=confirmed
// Вместо status можно передать active=true для выборки только активных бронирований
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	workerID, err := strconv.ParseInt(vars["workerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /workers/{id}/bookings - Invalid worker ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWorkerID)
		return
	}

	query := r.URL.Query()

	from, err := time.Parse(domain.DateFormat, query.Get("from"))
	if err != nil {
		h.logger.Warn("GET /workers/{id}/bookings - Invalid from date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateRange)
		return
	}

	to, err := time.Parse(domain.DateFormat, query.Get("to"))
	if err != nil {
		h.logger.Warn("GET /workers/{id}/bookings - Invalid to date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateRange)
		return
	}

	req := &models.ListBookingsRequest{
		WorkerID: workerID,
		From:     from,
		// Верхняя граница исключительна: день to входит в выборку целиком
		To:         to.AddDate(0, 0, 1),
		ActiveOnly: query.Get("active") == "true",
	}
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidStatus):
			h.logger.Warn("GET /workers/{id}/bookings - Invalid status: worker_id=%d, error=%v", workerID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /workers/{id}/bookings - Invalid input: worker_id=%d, error=%v", workerID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		case errors.Is(err, bookings.ErrInvalidTimeRange):
			h.logger.Warn("GET /workers/{id}/bookings - Invalid range: worker_id=%d, error=%v", workerID, err)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		default:
			h.logger.Error("GET /workers/{id}/bookings - Failed to list bookings: worker_id=%d, error=%v", workerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /workers/{id}/bookings - Bookings retrieved successfully: worker_id=%d, count=%d",
		workerID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
