package get_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/schedules"
)

const (
	msgInvalidWorkerID  = "некорректный ID работника"
	msgScheduleNotFound = "расписание не найдено"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/workers/{workerId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	workerID, err := strconv.ParseInt(vars["workerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /workers/{id}/schedule - Invalid worker ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWorkerID)
		return
	}

	result, err := h.service.Get(r.Context(), workerID)
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrScheduleNotFound):
			h.logger.Warn("GET /workers/{id}/schedule - Schedule not found: worker_id=%d", workerID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, schedules.ErrInvalidInput):
			h.logger.Warn("GET /workers/{id}/schedule - Invalid input: worker_id=%d, error=%v", workerID, err)
			handlers.RespondBadRequest(w, msgInvalidWorkerID)

		default:
			h.logger.Error("GET /workers/{id}/schedule - Failed to get schedule: worker_id=%d, error=%v", workerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /workers/{id}/schedule - Schedule retrieved successfully: worker_id=%d, schedule_id=%d",
		workerID, result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
