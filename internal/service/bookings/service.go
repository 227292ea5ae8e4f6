package bookings

import (
	"context"
	"fmt"

	"github.com/m04kA/CWS-BookingService/internal/domain"
	"github.com/m04kA/CWS-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Create создает бронирование и возвращает созданную строку,
// включая присвоенный БД id и вычисленный end_time
func (s *Service) Create(ctx context.Context, req *models.CreateBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Create: creating booking for user=%s, room=%d, date=%s, time=%s, duration=%dh",
		req.UserEmail, req.RoomID, req.Date.Format(domain.DateFormat), req.StartTime, req.Duration)

	booking, err := s.bookingRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Create: repository error for user=%s: %v", req.UserEmail, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: booking created id=%d, end_time=%s", booking.ID, booking.EndTime)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings возвращает бронирования пользователя вместе с типом комнаты
// При UpcomingOnly выбираются только бронирования с датой не раньше текущей
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) ([]models.UserBookingResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%s, upcomingOnly=%t",
		req.UserEmail, req.UpcomingOnly)

	bookings, err := s.bookingRepo.ListByUser(ctx, req.ToFilter())
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%s: %v", req.UserEmail, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: fetched %d bookings for user=%s", len(bookings), req.UserEmail)
	return models.FromDomainUserBookingList(bookings), nil
}

// GetBookingsByDate возвращает бронирования пользователя на конкретную дату
func (s *Service) GetBookingsByDate(ctx context.Context, req *models.GetBookingsByDateRequest) ([]models.UserBookingResponse, error) {
	s.logger.Info("GetBookingsByDate: fetching bookings for user=%s, date=%s",
		req.UserEmail, req.Date.Format(domain.DateFormat))

	bookings, err := s.bookingRepo.ListByUser(ctx, req.ToFilter())
	if err != nil {
		s.logger.Error("GetBookingsByDate: repository error for user=%s: %v", req.UserEmail, err)
		return nil, fmt.Errorf("%w: GetBookingsByDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetBookingsByDate: fetched %d bookings for user=%s", len(bookings), req.UserEmail)
	return models.FromDomainUserBookingList(bookings), nil
}

// Update перезаписывает start_time, duration, date и пересчитанный end_time
// Обновление несуществующего id не является ошибкой
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateBookingRequest) error {
	s.logger.Info("Update: updating booking id=%d, date=%s, time=%s, duration=%dh",
		id, req.Date.Format(domain.DateFormat), req.StartTime, req.Duration)

	if err := s.bookingRepo.Update(ctx, id, req.StartTime, req.Duration, req.Date); err != nil {
		s.logger.Error("Update: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: booking id=%d updated", id)
	return nil
}

// Delete физически удаляет бронирование
// Удаление несуществующего id не является ошибкой
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d", id)

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		s.logger.Error("Delete: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: booking id=%d deleted", id)
	return nil
}
