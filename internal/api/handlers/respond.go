package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Статусы конверта ответа
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// Response единый конверт ответа API: {status, data?, message}
type Response struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message"`
}

// errorResponse тело ответа при внутренней ошибке: {message}
type errorResponse struct {
	Message string `json:"message"`
}

// RespondSuccess отправляет успешный ответ в конверте
func RespondSuccess(w http.ResponseWriter, data interface{}, message string) {
	writeJSON(w, http.StatusOK, Response{
		Status:  StatusSuccess,
		Data:    data,
		Message: message,
	})
}

// RespondFailed отправляет мягкий отказ: валидный запрос без пригодного результата
// Это HTTP 200 со status=failed, а не ошибка
func RespondFailed(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, Response{
		Status:  StatusFailed,
		Message: message,
	})
}

// RespondBadRequest отправляет ошибку валидации запроса
func RespondBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Message: message})
}

// RespondInternalError отправляет внутреннюю ошибку с текстом причины
func RespondInternalError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusInternalServerError, errorResponse{Message: err.Error()})
}

// DecodeJSON декодирует тело запроса в dst
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("empty request body")
	}
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	// Ошибку кодирования уже не доставить клиенту, заголовки отправлены
	_ = json.NewEncoder(w).Encode(body)
}
