package welcome

import "net/http"

const welcomeMessage = "Welcome to the Coworking space bookings API!"

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Handle GET /
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(welcomeMessage))
}
