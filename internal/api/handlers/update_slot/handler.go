package update_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/slots"
)

const (
	msgInvalidSlotID      = "некорректный ID слота"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается RFC3339"
	msgSlotNotFound       = "слот не найден"
	msgSlotBooked         = "слот забронирован, изменение через отмену или перенос бронирования"
	msgInvalidTransition  = "недопустимый переход статуса"
	msgInvalidStatus      = "некорректный статус слота"
	msgInvalidTimeRange   = "время окончания должно быть позже времени начала"
	msgInvalidInput       = "некорректные параметры обновления"
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

// Handle PATCH /api/v1/slots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotID, err := strconv.ParseInt(vars["slotId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /slots/{id} - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	var req UpdateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /slots/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(slotID)
	if err != nil {
		h.logger.Warn("PATCH /slots/{id} - Failed to parse time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.service.Update(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrSlotNotFound):
			h.logger.Warn("PATCH /slots/{id} - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, slots.ErrSlotBooked):
			h.logger.Warn("PATCH /slots/{id} - Slot is booked: slot_id=%d", slotID)
			handlers.RespondError(w, http.StatusConflict, msgSlotBooked)

		case errors.Is(err, slots.ErrInvalidTransition):
			h.logger.Warn("PATCH /slots/{id} - Invalid transition: slot_id=%d, error=%v", slotID, err)
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

		case errors.Is(err, slots.ErrInvalidStatus):
			h.logger.Warn("PATCH /slots/{id} - Invalid status: slot_id=%d, error=%v", slotID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, slots.ErrInvalidTimeRange):
			h.logger.Warn("PATCH /slots/{id} - Invalid time range: slot_id=%d", slotID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("PATCH /slots/{id} - Invalid input: slot_id=%d, error=%v", slotID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /slots/{id} - Failed to update slot: slot_id=%d, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /slots/{id} - Slot updated successfully: slot_id=%d, status=%s",
		result.ID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
