package list_rooms

import (
	"net/http"

	"github.com/m04kA/CWS-BookingService/internal/api/handlers"
)

const (
	msgRoomsFetched = "All rooms fetched successfully"
)

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /roomtypes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /roomtypes - Failed to list rooms: %v", err)
		handlers.RespondInternalError(w, err)
		return
	}

	h.logger.Info("GET /roomtypes - Rooms fetched successfully: count=%d", len(rooms))
	handlers.RespondSuccess(w, rooms, msgRoomsFetched)
}
