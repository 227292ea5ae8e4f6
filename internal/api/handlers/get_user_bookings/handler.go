package get_user_bookings

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/CWS-BookingService/internal/api/handlers"
	"github.com/m04kA/CWS-BookingService/internal/service/bookings/models"
)

const (
	msgNoBookings      = "There are no bookings"
	msgBookingsFetched = "Bookings fetched successfully"
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

// Handle GET /bookings/{user_email}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userEmail := vars["user_email"]

	serviceReq := &models.GetUserBookingsRequest{
		UserEmail: userEmail,
	}

	result, err := h.service.GetUserBookings(r.Context(), serviceReq)
	if err != nil {
		h.logger.Error("GET /bookings/{user_email} - Failed to get bookings: user=%s, error=%v", userEmail, err)
		handlers.RespondInternalError(w, err)
		return
	}

	// Пустой результат это мягкий отказ, а не пустой успешный список
	if len(result) == 0 {
		h.logger.Warn("GET /bookings/{user_email} - No bookings: user=%s", userEmail)
		handlers.RespondFailed(w, msgNoBookings)
		return
	}

	h.logger.Info("GET /bookings/{user_email} - Bookings retrieved successfully: user=%s, count=%d",
		userEmail, len(result))
	handlers.RespondSuccess(w, result, msgBookingsFetched)
}
