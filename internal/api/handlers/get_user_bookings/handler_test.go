package get_user_bookings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CWS-BookingService/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	req    *models.GetUserBookingsRequest
	result []models.UserBookingResponse
	err    error
}

func (f *fakeService) GetUserBookings(_ context.Context, req *models.GetUserBookingsRequest) ([]models.UserBookingResponse, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func doRequest(h *Handler, email string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/bookings/"+email, nil)
	req = mux.SetURLVars(req, map[string]string{"user_email": email})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	svc := &fakeService{result: []models.UserBookingResponse{
		{
			ID:        1,
			Title:     "Standup",
			Date:      "2024-06-01",
			StartTime: "09:00:00",
			EndTime:   "10:00:00",
			UserEmail: "a@b.com",
			RoomType:  "conference",
		},
	}}
	h := NewHandler(svc, nopLogger{})

	rec := doRequest(h, "a@b.com")

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status  string                       `json:"status"`
		Data    []models.UserBookingResponse `json:"data"`
		Message string                       `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "success", body.Status)
	assert.Equal(t, "Bookings fetched successfully", body.Message)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "conference", body.Data[0].RoomType)

	// Без фильтра по дате: выбираются все бронирования пользователя
	require.NotNil(t, svc.req)
	assert.Equal(t, "a@b.com", svc.req.UserEmail)
	assert.False(t, svc.req.UpcomingOnly)
}

func TestHandle_Empty_SoftFailure(t *testing.T) {
	svc := &fakeService{result: []models.UserBookingResponse{}}
	h := NewHandler(svc, nopLogger{})

	rec := doRequest(h, "nobody@x.com")

	// Пустой результат это мягкий отказ, а не пустой успешный список
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "failed", resp["status"])
	assert.Equal(t, "There are no bookings", resp["message"])
	_, hasData := resp["data"]
	assert.False(t, hasData)
}

func TestHandle_ServiceError(t *testing.T) {
	svc := &fakeService{err: errors.New("pq: connection refused")}
	h := NewHandler(svc, nopLogger{})

	rec := doRequest(h, "a@b.com")

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "pq: connection refused", resp["message"])
}
