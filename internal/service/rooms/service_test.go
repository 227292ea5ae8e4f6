package rooms

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CWS-BookingService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRoomRepo struct {
	rooms []*domain.Room
	err   error
}

func (f *fakeRoomRepo) List(context.Context) ([]*domain.Room, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rooms, nil
}

func TestService_List(t *testing.T) {
	repo := &fakeRoomRepo{rooms: []*domain.Room{
		{ID: 1, Type: "conference"},
		{ID: 2, Type: "private office"},
	}}
	svc := NewService(repo, nopLogger{})

	result, err := svc.List(context.Background())
	require.NoError(t, err)

	require.Len(t, result, 2)
	assert.Equal(t, int64(1), result[0].ID)
	assert.Equal(t, "conference", result[0].Type)
	assert.Equal(t, "private office", result[1].Type)
}

func TestService_List_Empty(t *testing.T) {
	repo := &fakeRoomRepo{rooms: []*domain.Room{}}
	svc := NewService(repo, nopLogger{})

	result, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Len(t, result, 0)
}

func TestService_List_RepoError(t *testing.T) {
	repo := &fakeRoomRepo{err: errors.New("pq: connection refused")}
	svc := NewService(repo, nopLogger{})

	_, err := svc.List(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
}
