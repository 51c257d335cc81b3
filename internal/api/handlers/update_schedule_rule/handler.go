package update_schedule_rule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/schedules"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/schedules/models"
)

const (
	msgInvalidWorkerID    = "некорректный ID работника"
	msgInvalidWeekday     = "некорректный день недели, ожидается число от 0 до 6"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgScheduleNotFound   = "расписание не найдено"
	msgValidationFailed   = "правило нарушает инварианты расписания"
	msgInvalidInput       = "некорректные параметры правила"
)

// UpdateRuleRequest HTTP request model
type UpdateRuleRequest struct {
	IsWorkingDay bool                `json:"isWorkingDay"`
	StartTime    string              `json:"startTime,omitempty"` // HH:MM
	EndTime      string              `json:"endTime,omitempty"`   // HH:MM
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

// Handle PUT /api/v1/workers/{workerId}/schedule/rules/{weekday}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	workerID, err := strconv.ParseInt(vars["workerId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /workers/{id}/schedule/rules/{weekday} - Invalid worker ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWorkerID)
		return
	}

	weekday, err := strconv.Atoi(vars["weekday"])
	if err != nil || weekday < 0 || weekday > 6 {
		h.logger.Warn("PUT /workers/{id}/schedule/rules/{weekday} - Invalid weekday: %s", vars["weekday"])
		handlers.RespondBadRequest(w, msgInvalidWeekday)
		return
	}

	var req UpdateRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /workers/{id}/schedule/rules/{weekday} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpsertRule(r.Context(), &models.UpsertRuleRequest{
		WorkerID:     workerID,
		Weekday:      weekday,
		IsWorkingDay: req.IsWorkingDay,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Breaks:       req.Breaks,
	})
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrScheduleNotFound):
			h.logger.Warn("PUT /workers/{id}/schedule/rules/{weekday} - Schedule not found: worker_id=%d", workerID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, schedules.ErrValidation):
			h.logger.Warn("PUT /workers/{id}/schedule/rules/{weekday} - Validation failed: worker_id=%d, weekday=%d, error=%v",
				workerID, weekday, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgValidationFailed)

		case errors.Is(err, schedules.ErrInvalidInput):
			h.logger.Warn("PUT /workers/{id}/schedule/rules/{weekday} - Invalid input: worker_id=%d, error=%v", workerID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /workers/{id}/schedule/rules/{weekday} - Failed to upsert rule: worker_id=%d, error=%v",
				workerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /workers/{id}/schedule/rules/{weekday} - Rule saved successfully: worker_id=%d, weekday=%d",
		workerID, weekday)
	handlers.RespondJSON(w, http.StatusOK, result)
}
