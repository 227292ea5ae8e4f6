package models

import (
	"time"

	"github.com/m04kA/CWS-BookingService/internal/domain"
	"github.com/m04kA/CWS-BookingService/pkg/types"
)

// Request модели

// CreateBookingRequest запрос на создание бронирования
type CreateBookingRequest struct {
	Title       string
	Description string
	Date        time.Time
	StartTime   types.TimeString
	Duration    int
	PhoneNumber string
	UserEmail   string
	RoomID      int64
}

// ToDomain конвертирует запрос в domain модель
func (r *CreateBookingRequest) ToDomain() *domain.Booking {
	return &domain.Booking{
		Title:       r.Title,
		Description: r.Description,
		Date:        r.Date,
		StartTime:   r.StartTime,
		Duration:    r.Duration,
		PhoneNumber: r.PhoneNumber,
		UserEmail:   r.UserEmail,
		RoomID:      r.RoomID,
	}
}

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserEmail    string
	UpcomingOnly bool
}

// ToFilter конвертирует запрос в domain фильтр
func (r *GetUserBookingsRequest) ToFilter() domain.UserBookingsFilter {
	return domain.UserBookingsFilter{
		UserEmail:    r.UserEmail,
		UpcomingOnly: r.UpcomingOnly,
	}
}

// GetBookingsByDateRequest запрос на получение бронирований пользователя на дату
type GetBookingsByDateRequest struct {
	UserEmail string
	Date      time.Time
}

// ToFilter конвертирует запрос в domain фильтр
func (r *GetBookingsByDateRequest) ToFilter() domain.UserBookingsFilter {
	date := r.Date
	return domain.UserBookingsFilter{
		UserEmail: r.UserEmail,
		Date:      &date,
	}
}

// UpdateBookingRequest запрос на обновление бронирования
// Обновляются только start_time, duration и date; end_time пересчитывается в БД
type UpdateBookingRequest struct {
	StartTime types.TimeString
	Duration  int
	Date      time.Time
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`       // "2024-06-01"
	StartTime   string `json:"start_time"` // "09:00:00"
	EndTime     string `json:"end_time"`   // "10:00:00"
	Duration    int    `json:"duration"`
	PhoneNumber string `json:"phone_number"`
	UserEmail   string `json:"user_email"`
	RoomID      int64  `json:"room_id"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		Date:        b.Date.Format(domain.DateFormat),
		StartTime:   b.StartTime.String(),
		EndTime:     b.EndTime.String(),
		Duration:    b.Duration,
		PhoneNumber: b.PhoneNumber,
		UserEmail:   b.UserEmail,
		RoomID:      b.RoomID,
	}
}

// UserBookingResponse ответ с данными бронирования и типом комнаты
type UserBookingResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	UserEmail   string `json:"user_email"`
	PhoneNumber string `json:"phone_number"`
	RoomType    string `json:"type"`
}

// FromDomainUserBooking конвертирует domain модель в DTO
func FromDomainUserBooking(b *domain.UserBooking) *UserBookingResponse {
	if b == nil {
		return nil
	}

	return &UserBookingResponse{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		Date:        b.Date.Format(domain.DateFormat),
		StartTime:   b.StartTime.String(),
		EndTime:     b.EndTime.String(),
		UserEmail:   b.UserEmail,
		PhoneNumber: b.PhoneNumber,
		RoomType:    b.RoomType,
	}
}

// FromDomainUserBookingList конвертирует список domain моделей в DTO
// Возвращает пустой слайс, а не nil, чтобы в JSON всегда был массив
func FromDomainUserBookingList(bookings []*domain.UserBooking) []UserBookingResponse {
	resp := make([]UserBookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		if dto := FromDomainUserBooking(booking); dto != nil {
			resp = append(resp, *dto)
		}
	}
	return resp
}
