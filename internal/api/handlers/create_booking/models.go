package create_booking

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

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`       // "2024-06-01"
	StartTime   string `json:"start_time"` // "09:00"
	Duration    int    `json:"duration"`   // в часах
	PhoneNumber string `json:"phone_number"`
	UserEmail   string `json:"user_email"`
	RoomID      int64  `json:"room_id"`
}

// HasAllFields проверяет, что все обязательные поля присутствуют
// Отсутствие поля это мягкий отказ, а не ошибка запроса
func (r *CreateBookingRequest) HasAllFields() bool {
	return r.Title != "" &&
		r.Description != "" &&
		r.Date != "" &&
		r.StartTime != "" &&
		r.Duration != 0 &&
		r.PhoneNumber != "" &&
		r.UserEmail != "" &&
		r.RoomID != 0
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса (с парсингом даты и времени)
func (r *CreateBookingRequest) ToServiceRequest() (*models.CreateBookingRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, errInvalidDate
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, errInvalidTime
	}

	return &models.CreateBookingRequest{
		Title:       r.Title,
		Description: r.Description,
		Date:        date,
		StartTime:   startTime,
		Duration:    r.Duration,
		PhoneNumber: r.PhoneNumber,
		UserEmail:   r.UserEmail,
		RoomID:      r.RoomID,
	}, nil
}
