package domain

import (
	"time"

	"github.com/m04kA/CWS-BookingService/pkg/types"
)

// Booking бронирование комнаты коворкинга
type Booking struct {
	ID          int64
	Title       string
	Description string
	Date        time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString // вычисляется в SQL как start_time + duration часов
	Duration    int              // длительность в часах
	PhoneNumber string
	UserEmail   string
	RoomID      int64
}

// UserBooking бронирование вместе с типом комнаты (JOIN bookings + rooms)
type UserBooking struct {
	ID          int64
	Title       string
	Description string
	Date        time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	UserEmail   string
	PhoneNumber string
	RoomType    string
}

// UserBookingsFilter фильтр выборки бронирований пользователя
type UserBookingsFilter struct {
	UserEmail    string
	UpcomingOnly bool       // только бронирования с датой не раньше текущей
	Date         *time.Time // точное совпадение по дате (опционально)
}
