package update_schedule_override

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/schedules"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/schedules/models"
)

const (
	msgInvalidWorkerID    = "некорректный ID работника"
	msgInvalidDate        = "некорректная дата, ожидается YYYY-MM-DD"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgScheduleNotFound   = "расписание не найдено"
	msgValidationFailed   = "исключение нарушает инварианты расписания"
	msgInvalidInput       = "некорректные параметры исключения"
)

// UpdateOverrideRequest HTTP request model
type UpdateOverrideRequest struct {
	Reason       string              `json:"reason,omitempty"`
	IsWorkingDay bool                `json:"isWorkingDay"`
	StartTime    *string             `json:"startTime,omitempty"` // HH:MM
	EndTime      *string             `json:"endTime,omitempty"`   // HH:MM
	Breaks       []models.BreakInput `json:"breaks,omitempty"`
}

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

// Handle PUT /api/v1/workers/{workerId}/schedule/overrides/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	workerID, err := strconv.ParseInt(vars["workerId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /workers/{id}/schedule/overrides/{date} - Invalid worker ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWorkerID)
		return
	}

	date, err := time.Parse(domain.DateFormat, vars["date"])
	if err != nil {
		h.logger.Warn("PUT /workers/{id}/schedule/overrides/{date} - Invalid date: %s", vars["date"])
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var req UpdateOverrideRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /workers/{id}/schedule/overrides/{date} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpsertOverride(r.Context(), &models.UpsertOverrideRequest{
		WorkerID:     workerID,
		Date:         date,
		Reason:       req.Reason,
		IsWorkingDay: req.IsWorkingDay,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Breaks:       req.Breaks,
	})
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrScheduleNotFound):
			h.logger.Warn("PUT /workers/{id}/schedule/overrides/{date} - Schedule not found: worker_id=%d", workerID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, schedules.ErrValidation):
			h.logger.Warn("PUT /workers/{id}/schedule/overrides/{date} - Validation failed: worker_id=%d, error=%v",
				workerID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgValidationFailed)

		case errors.Is(err, schedules.ErrInvalidInput):
			h.logger.Warn("PUT /workers/{id}/schedule/overrides/{date} - Invalid input: worker_id=%d, error=%v", workerID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /workers/{id}/schedule/overrides/{date} - Failed to upsert override: worker_id=%d, error=%v",
				workerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /workers/{id}/schedule/overrides/{date} - Override saved successfully: worker_id=%d, date=%s",
		workerID, vars["date"])
	handlers.RespondJSON(w, http.StatusOK, result)
}
