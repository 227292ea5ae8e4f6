package get_bookings_by_date

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/CWS-BookingService/internal/api/handlers"
	"github.com/m04kA/CWS-BookingService/internal/domain"
	"github.com/m04kA/CWS-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidDate     = "invalid date format, expected YYYY-MM-DD"
	msgNoBookingsFound = "No bookings found"
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

// Handle GET /bookings/{date}/{email}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	dateStr := vars["date"]
	email := vars["email"]

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /bookings/{date}/{email} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	serviceReq := &models.GetBookingsByDateRequest{
		UserEmail: email,
		Date:      date,
	}

	result, err := h.service.GetBookingsByDate(r.Context(), serviceReq)
	if err != nil {
		h.logger.Error("GET /bookings/{date}/{email} - Failed to get bookings: user=%s, date=%s, error=%v",
			email, dateStr, err)
		handlers.RespondInternalError(w, err)
		return
	}

	// Пустой результат это мягкий отказ, а не пустой успешный список
	if len(result) == 0 {
		h.logger.Warn("GET /bookings/{date}/{email} - No bookings: user=%s, date=%s", email, dateStr)
		handlers.RespondFailed(w, msgNoBookingsFound)
		return
	}

	h.logger.Info("GET /bookings/{date}/{email} - Bookings retrieved successfully: user=%s, date=%s, count=%d",
		email, dateStr, len(result))
	handlers.RespondSuccess(w, result, msgBookingsFetched)
}
