package get_upcoming_bookings

import "github.com/m04kA/CWS-BookingService/internal/service/bookings/models"

// GetUpcomingBookingsRequest HTTP request model
type GetUpcomingBookingsRequest struct {
	UserEmail string `json:"user_email"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *GetUpcomingBookingsRequest) ToServiceRequest() *models.GetUserBookingsRequest {
	return &models.GetUserBookingsRequest{
		UserEmail:    r.UserEmail,
		UpcomingOnly: true,
	}
}
