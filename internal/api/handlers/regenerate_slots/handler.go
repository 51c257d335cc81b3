package regenerate_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	regenerateSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/regenerate_slots"
)

const (
	msgInvalidWorkerID    = "некорректный ID работника"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgScheduleNotFound   = "расписание не найдено"
	msgInvalidTimezone    = "расписание содержит неизвестную таймзону"
	msgInvalidRange       = "некорректный диапазон дат"
	msgInvalidInput       = "некорректные параметры регенерации"
)

type Handler struct {
	useCase RegenerateSlotsUseCase
	logger  Logger
}

func NewHandler(useCase RegenerateSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/workers/{workerId}/slots/regenerate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	workerID, err := strconv.ParseInt(vars["workerId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /workers/{id}/slots/regenerate - Invalid worker ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWorkerID)
		return
	}

	var req RegenerateSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /workers/{id}/slots/regenerate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(workerID)
	if err != nil {
		h.logger.Warn("POST /workers/{id}/slots/regenerate - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, regenerateSlots.ErrScheduleNotFound):
			h.logger.Warn("POST /workers/{id}/slots/regenerate - Schedule not found: worker_id=%d", workerID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, regenerateSlots.ErrInvalidTimezone):
			h.logger.Error("POST /workers/{id}/slots/regenerate - Invalid timezone: worker_id=%d, error=%v", workerID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidTimezone)

		case errors.Is(err, regenerateSlots.ErrInvalidRange):
			h.logger.Warn("POST /workers/{id}/slots/regenerate - Invalid range: worker_id=%d, error=%v", workerID, err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, regenerateSlots.ErrInvalidInput):
			h.logger.Warn("POST /workers/{id}/slots/regenerate - Invalid input: worker_id=%d, error=%v", workerID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /workers/{id}/slots/regenerate - Failed to regenerate: worker_id=%d, error=%v", workerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /workers/{id}/slots/regenerate - Regenerated successfully: worker_id=%d, created=%d, deleted=%d",
		workerID, result.CreatedCount, result.DeletedCount)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
