package get_worker_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/slots"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/slots/models"
)

const (
	msgInvalidWorkerID  = "некорректный ID работника"
	msgInvalidDateRange = "некорректный диапазон дат, ожидается from=YYYY-MM-DD&to=YYYY-MM-DD"
	msgInvalidStatus    = "некорректный статус слота"
)

type Handler struct {
	service SlotService
	logger  Logger
}

func NewHandler(service SlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/workers/{workerId}/slots?from=YYYY-MM-DD&to=YYYY-MM-DD&status=available
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	workerID, err := strconv.ParseInt(vars["workerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /workers/{id}/slots - Invalid worker ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWorkerID)
		return
	}

	query := r.URL.Query()

	from, err := time.Parse(domain.DateFormat, query.Get("from"))
	if err != nil {
		h.logger.Warn("GET /workers/{id}/slots - Invalid from date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateRange)
		return
	}

	to, err := time.Parse(domain.DateFormat, query.Get("to"))
	if err != nil {
		h.logger.Warn("GET /workers/{id}/slots - Invalid to date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateRange)
		return
	}

	req := &models.ListSlotsRequest{
		WorkerID: workerID,
		From:     from,
		// Верхняя граница исключительна: день to входит в выборку целиком
		To: to.AddDate(0, 0, 1),
	}
	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrInvalidStatus):
			h.logger.Warn("GET /workers/{id}/slots - Invalid status: worker_id=%d, error=%v", workerID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, slots.ErrInvalidInput), errors.Is(err, slots.ErrInvalidTimeRange):
			h.logger.Warn("GET /workers/{id}/slots - Invalid input: worker_id=%d, error=%v", workerID, err)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		default:
			h.logger.Error("GET /workers/{id}/slots - Failed to list slots: worker_id=%d, error=%v", workerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /workers/{id}/slots - Slots retrieved successfully: worker_id=%d, count=%d",
		workerID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, result)
}
