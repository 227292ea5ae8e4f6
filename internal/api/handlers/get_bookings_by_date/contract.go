package get_bookings_by_date

import (
	"context"

	"github.com/m04kA/CWS-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetBookingsByDate(ctx context.Context, req *models.GetBookingsByDateRequest) ([]models.UserBookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
