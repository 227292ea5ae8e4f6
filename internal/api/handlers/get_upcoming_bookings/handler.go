package get_upcoming_bookings

import (
	"net/http"

	"github.com/m04kA/CWS-BookingService/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgNoUpcomingBookings = "There are no upcoming bookings"
	msgBookingsFetched    = "Bookings fetched successfully"
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

// Handle POST /bookings/upcoming
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req GetUpcomingBookingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/upcoming - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.GetUserBookings(r.Context(), req.ToServiceRequest())
	if err != nil {
		h.logger.Error("POST /bookings/upcoming - Failed to get bookings: user=%s, error=%v", req.UserEmail, err)
		handlers.RespondInternalError(w, err)
		return
	}

	// Пустой результат это мягкий отказ, а не пустой успешный список
	if len(result) == 0 {
		h.logger.Warn("POST /bookings/upcoming - No upcoming bookings: user=%s", req.UserEmail)
		handlers.RespondFailed(w, msgNoUpcomingBookings)
		return
	}

	h.logger.Info("POST /bookings/upcoming - Bookings retrieved successfully: user=%s, count=%d",
		req.UserEmail, len(result))
	handlers.RespondSuccess(w, result, msgBookingsFetched)
}
