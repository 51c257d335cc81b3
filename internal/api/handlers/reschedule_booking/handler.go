package reschedule_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	rescheduleBooking "github.com/m04kA/SMC-AvailabilityService/internal/usecase/reschedule_booking"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgBookingNotFound    = "бронирование не найдено"
	msgSlotNotFound       = "слот не найден"
	msgAlreadyFinalized   = "бронирование уже завершено"
	msgSameSlot           = "бронирование уже занимает этот слот"
	msgWorkerMismatch     = "слот принадлежит другому работнику"
	msgSlotNotAvailable   = "слот недоступен для бронирования"
	msgDurationMismatch   = "длительность слота не совпадает с бронированием"
	msgSlotConflict       = "слот уже занят другим бронированием"
	msgInvalidInput       = "некорректные параметры переноса"
)

type Handler struct {
	useCase RescheduleBookingUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/reschedule - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req RescheduleBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(bookingID))
	if err != nil {
		switch {
		case errors.Is(err, rescheduleBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, rescheduleBooking.ErrSlotNotFound):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Slot not found: slot_id=%d", req.NewSlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, rescheduleBooking.ErrAlreadyFinalized):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Already finalized: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyFinalized)

		case errors.Is(err, rescheduleBooking.ErrSameSlot):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Same slot: booking_id=%d, slot_id=%d", bookingID, req.NewSlotID)
			handlers.RespondBadRequest(w, msgSameSlot)

		case errors.Is(err, rescheduleBooking.ErrWorkerMismatch):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Worker mismatch: booking_id=%d, slot_id=%d", bookingID, req.NewSlotID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgWorkerMismatch)

		case errors.Is(err, rescheduleBooking.ErrSlotNotAvailable):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Slot not available: slot_id=%d", req.NewSlotID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, rescheduleBooking.ErrSlotConflict):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Slot booked concurrently: slot_id=%d", req.NewSlotID)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, rescheduleBooking.ErrDurationMismatch):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Duration mismatch: booking_id=%d, slot_id=%d", bookingID, req.NewSlotID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgDurationMismatch)

		case errors.Is(err, rescheduleBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /bookings/{id}/reschedule - Failed to reschedule: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/reschedule - Booking rescheduled successfully: booking_id=%d, slot_id=%d",
		result.ID, result.SlotID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
