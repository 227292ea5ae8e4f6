package delete_booking

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CWS-BookingService/internal/api/handlers"
)

const (
	msgInvalidBookingID = "invalid booking id"
	msgBookingDeleted   = "Booking deleted successfully"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /bookings/{id}
// Удаление несуществующего id тоже успех: БД просто не затронет ни одной строки
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	idStr := vars["id"]

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.logger.Error("DELETE /bookings/{id} - Failed to delete booking: booking_id=%d, error=%v", id, err)
		handlers.RespondInternalError(w, err)
		return
	}

	h.logger.Info("DELETE /bookings/{id} - Booking deleted successfully: booking_id=%d", id)
	handlers.RespondSuccess(w, nil, msgBookingDeleted)
}
