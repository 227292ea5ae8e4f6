package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CWS-BookingService/internal/domain"
	"github.com/m04kA/CWS-BookingService/internal/service/bookings/models"
	"github.com/m04kA/CWS-BookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBookingRepo struct {
	created    *domain.Booking
	listResult []*domain.UserBooking
	lastFilter domain.UserBookingsFilter

	updatedID int64
	deletedID int64

	err error
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	// Имитация БД: присваиваем id и вычисляем end_time из start_time + duration
	booking.ID = 42
	endTime, err := booking.StartTime.AddHours(booking.Duration)
	if err != nil {
		return nil, err
	}
	booking.EndTime = endTime
	f.created = booking
	return booking, nil
}

func (f *fakeBookingRepo) ListByUser(_ context.Context, filter domain.UserBookingsFilter) ([]*domain.UserBooking, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastFilter = filter
	return f.listResult, nil
}

func (f *fakeBookingRepo) Update(_ context.Context, id int64, _ types.TimeString, _ int, _ time.Time) error {
	if f.err != nil {
		return f.err
	}
	f.updatedID = id
	return nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	f.deletedID = id
	return nil
}

func date(s string) time.Time {
	d, err := time.Parse(domain.DateFormat, s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestService_Create(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateBookingRequest{
		Title:       "Standup",
		Description: "daily",
		Date:        date("2024-06-01"),
		StartTime:   "09:00:00",
		Duration:    1,
		PhoneNumber: "555",
		UserEmail:   "a@b.com",
		RoomID:      1,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "2024-06-01", resp.Date)
	assert.Equal(t, "09:00:00", resp.StartTime)
	assert.Equal(t, "10:00:00", resp.EndTime)
	assert.Equal(t, 1, resp.Duration)
	assert.Equal(t, "a@b.com", resp.UserEmail)
}

func TestService_Create_RepoError(t *testing.T) {
	repo := &fakeBookingRepo{err: errors.New("pq: relation does not exist")}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateBookingRequest{
		Title:     "Standup",
		Date:      date("2024-06-01"),
		StartTime: "09:00:00",
		Duration:  1,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_GetUserBookings(t *testing.T) {
	repo := &fakeBookingRepo{
		listResult: []*domain.UserBooking{
			{
				ID:        1,
				Title:     "Standup",
				Date:      date("2024-06-01"),
				StartTime: "09:00:00",
				EndTime:   "10:00:00",
				UserEmail: "a@b.com",
				RoomType:  "conference",
			},
		},
	}
	svc := NewService(repo, nopLogger{})

	result, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserEmail:    "a@b.com",
		UpcomingOnly: true,
	})
	require.NoError(t, err)

	require.Len(t, result, 1)
	assert.Equal(t, "conference", result[0].RoomType)
	assert.Equal(t, "10:00:00", result[0].EndTime)

	// Фильтр передается в репозиторий как есть
	assert.Equal(t, "a@b.com", repo.lastFilter.UserEmail)
	assert.True(t, repo.lastFilter.UpcomingOnly)
	assert.Nil(t, repo.lastFilter.Date)
}

func TestService_GetUserBookings_Empty(t *testing.T) {
	repo := &fakeBookingRepo{listResult: []*domain.UserBooking{}}
	svc := NewService(repo, nopLogger{})

	result, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserEmail: "nobody@x.com",
	})
	require.NoError(t, err)

	// Пустой слайс, а не nil: решение о мягком отказе принимает handler
	assert.NotNil(t, result)
	assert.Len(t, result, 0)
}

func TestService_GetBookingsByDate(t *testing.T) {
	repo := &fakeBookingRepo{listResult: []*domain.UserBooking{}}
	svc := NewService(repo, nopLogger{})

	_, err := svc.GetBookingsByDate(context.Background(), &models.GetBookingsByDateRequest{
		UserEmail: "a@b.com",
		Date:      date("2024-06-01"),
	})
	require.NoError(t, err)

	require.NotNil(t, repo.lastFilter.Date)
	assert.Equal(t, date("2024-06-01"), *repo.lastFilter.Date)
	assert.False(t, repo.lastFilter.UpcomingOnly)
}

func TestService_Update(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := NewService(repo, nopLogger{})

	err := svc.Update(context.Background(), 7, &models.UpdateBookingRequest{
		StartTime: "11:00:00",
		Duration:  2,
		Date:      date("2024-06-02"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), repo.updatedID)
}

func TestService_Delete(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.Delete(context.Background(), 9))
	assert.Equal(t, int64(9), repo.deletedID)
}

func TestService_Delete_RepoError(t *testing.T) {
	repo := &fakeBookingRepo{err: errors.New("pq: connection refused")}
	svc := NewService(repo, nopLogger{})

	err := svc.Delete(context.Background(), 9)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
}
