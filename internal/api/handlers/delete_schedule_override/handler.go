package delete_schedule_override

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/schedules"
)

const (
	msgInvalidWorkerID  = "некорректный ID работника"
	msgInvalidDate      = "некорректная дата, ожидается YYYY-MM-DD"
	msgScheduleNotFound = "расписание не найдено"
	msgOverrideNotFound = "исключение на эту дату не найдено"
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

// Handle DELETE /api/v1/workers/{workerId}/schedule/overrides/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	workerID, err := strconv.ParseInt(vars["workerId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /workers/{id}/schedule/overrides/{date} - Invalid worker ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWorkerID)
		return
	}

	date, err := time.Parse(domain.DateFormat, vars["date"])
	if err != nil {
		h.logger.Warn("DELETE /workers/{id}/schedule/overrides/{date} - Invalid date: %s", vars["date"])
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if err := h.service.DeleteOverride(r.Context(), workerID, date); err != nil {
		switch {
		case errors.Is(err, schedules.ErrScheduleNotFound):
			h.logger.Warn("DELETE /workers/{id}/schedule/overrides/{date} - Schedule not found: worker_id=%d", workerID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, schedules.ErrOverrideNotFound):
			h.logger.Warn("DELETE /workers/{id}/schedule/overrides/{date} - Override not found: worker_id=%d, date=%s",
				workerID, vars["date"])
			handlers.RespondNotFound(w, msgOverrideNotFound)

		case errors.Is(err, schedules.ErrInvalidInput):
			h.logger.Warn("DELETE /workers/{id}/schedule/overrides/{date} - Invalid input: worker_id=%d, error=%v", workerID, err)
			handlers.RespondBadRequest(w, msgInvalidWorkerID)

		default:
			h.logger.Error("DELETE /workers/{id}/schedule/overrides/{date} - Failed to delete override: worker_id=%d, error=%v",
				workerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /workers/{id}/schedule/overrides/{date} - Override deleted successfully: worker_id=%d, date=%s",
		workerID, vars["date"])
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
