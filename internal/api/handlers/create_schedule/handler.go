package create_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/schedules"
)

const (
	msgInvalidWorkerID    = "некорректный ID работника"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTimezone    = "неизвестная таймзона"
	msgInvalidInput       = "некорректные параметры расписания"
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

// Handle POST /api/v1/workers/{workerId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	workerID, err := strconv.ParseInt(vars["workerId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /workers/{id}/schedule - Invalid worker ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWorkerID)
		return
	}

	var req CreateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /workers/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(workerID)
	if err != nil {
		h.logger.Warn("POST /workers/{id}/schedule - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrInvalidTimezone):
			h.logger.Warn("POST /workers/{id}/schedule - Invalid timezone: worker_id=%d, timezone=%s", workerID, req.Timezone)
			handlers.RespondBadRequest(w, msgInvalidTimezone)

		case errors.Is(err, schedules.ErrInvalidInput):
			h.logger.Warn("POST /workers/{id}/schedule - Invalid input: worker_id=%d, error=%v", workerID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /workers/{id}/schedule - Failed to create schedule: worker_id=%d, error=%v", workerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /workers/{id}/schedule - Schedule created successfully: worker_id=%d, schedule_id=%d",
		workerID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
