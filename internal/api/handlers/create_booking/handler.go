package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/CWS-BookingService/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgInvalidTime        = "invalid start_time format, expected HH:MM"
	msgAllFieldsRequired  = "All fields are required"
	msgBookingCreated     = "New booking added successfully"
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

// Handle POST /bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Отсутствие обязательного поля это мягкий отказ: HTTP 200 со status=failed
	if !req.HasAllFields() {
		h.logger.Warn("POST /bookings - Missing required fields: user=%s", req.UserEmail)
		handlers.RespondFailed(w, msgAllFieldsRequired)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		if errors.Is(err, errInvalidTime) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		h.logger.Error("POST /bookings - Failed to create booking: user=%s, error=%v", req.UserEmail, err)
		handlers.RespondInternalError(w, err)
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user=%s", result.ID, req.UserEmail)
	handlers.RespondSuccess(w, result, msgBookingCreated)
}
