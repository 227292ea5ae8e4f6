package update_booking

import (
	"errors"
	"time"

	"github.com/m04kA/CWS-BookingService/internal/domain"
	"github.com/m04kA/CWS-BookingService/internal/service/bookings/models"
	"github.com/m04kA/CWS-BookingService/pkg/types"
)

var (
	errInvalidDate = errors.New("invalid date format")
	errInvalidTime = errors.New("invalid time format")
)

// UpdateBookingRequest HTTP request model
// Обновляются только start_time, duration и date
type UpdateBookingRequest struct {
	StartTime string `json:"start_time"` // "09:00"
	Duration  int    `json:"duration"`   // в часах
	Date      string `json:"date"`       // "2024-06-01"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса (с парсингом даты и времени)
func (r *UpdateBookingRequest) ToServiceRequest() (*models.UpdateBookingRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, errInvalidDate
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, errInvalidTime
	}

	return &models.UpdateBookingRequest{
		StartTime: startTime,
		Duration:  r.Duration,
		Date:      date,
	}, nil
}
