package delete_booking

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
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	deletedID int64
	called    bool
	err       error
}

func (f *fakeService) Delete(_ context.Context, id int64) error {
	f.called = true
	f.deletedID = id
	return f.err
}

func doRequest(h *Handler, id string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodDelete, "/bookings/"+id, nil)
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, nopLogger{})

	rec := doRequest(h, "7")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp["status"])
	assert.Equal(t, "Booking deleted successfully", resp["message"])
	assert.Equal(t, int64(7), svc.deletedID)
}

func TestHandle_NonExistentID_StillSuccess(t *testing.T) {
	// Удаление несуществующего id это успех: БД не затрагивает ни одной строки,
	// репозиторий не возвращает ошибку
	svc := &fakeService{}
	h := NewHandler(svc, nopLogger{})

	rec := doRequest(h, "999999")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp["status"])
}

func TestHandle_InvalidID(t *testing.T) {
	svc := &fakeService{}
	h := NewHandler(svc, nopLogger{})

	rec := doRequest(h, "abc")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, svc.called)
}

func TestHandle_ServiceError(t *testing.T) {
	svc := &fakeService{err: errors.New("pq: connection refused")}
	h := NewHandler(svc, nopLogger{})

	rec := doRequest(h, "7")

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "pq: connection refused", resp["message"])
}
