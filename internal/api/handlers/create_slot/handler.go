package create_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/slots"
)

const (
	msgInvalidWorkerID    = "некорректный ID работника"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается RFC3339"
	msgInvalidTimeRange   = "время окончания должно быть позже времени начала"
	msgInvalidStatus      = "некорректный статус слота"
	msgInvalidInput       = "некорректные параметры слота"
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

// Handle POST /api/v1/workers/{workerId}/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	workerID, err := strconv.ParseInt(vars["workerId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /workers/{id}/slots - Invalid worker ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWorkerID)
		return
	}

	var req CreateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /workers/{id}/slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(workerID)
	if err != nil {
		h.logger.Warn("POST /workers/{id}/slots - Failed to parse time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.service.CreateManual(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrInvalidTimeRange):
			h.logger.Warn("POST /workers/{id}/slots - Invalid time range: worker_id=%d", workerID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, slots.ErrInvalidStatus):
			h.logger.Warn("POST /workers/{id}/slots - Invalid status: worker_id=%d, error=%v", workerID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("POST /workers/{id}/slots - Invalid input: worker_id=%d, error=%v", workerID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /workers/{id}/slots - Failed to create slot: worker_id=%d, error=%v", workerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /workers/{id}/slots - Slot created successfully: slot_id=%d, worker_id=%d",
		result.ID, workerID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
