package reservations

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gourmethaven/reservation-service/internal/domain"
	reservationRepo "github.com/gourmethaven/reservation-service/internal/infra/storage/reservations"
	"github.com/gourmethaven/reservation-service/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeReservationRepo struct {
	list      []domain.Reservation
	listErr   error
	removeErr error

	removedID string
}

func (f *fakeReservationRepo) List(_ context.Context) ([]domain.Reservation, error) {
	return f.list, f.listErr
}

func (f *fakeReservationRepo) Remove(_ context.Context, id string) error {
	if f.removeErr != nil {
		return f.removeErr
	}
	f.removedID = id
	return nil
}

func fixtures() []domain.Reservation {
	return []domain.Reservation{
		{ID: "1", Status: domain.StatusPending},
		{ID: "2", Status: domain.StatusApproved},
		{ID: "3", Status: domain.StatusPending},
	}
}

func TestList(t *testing.T) {
	svc := NewService(&fakeReservationRepo{list: fixtures()}, nopLogger{})
	ctx := context.Background()

	t.Run("no filter", func(t *testing.T) {
		list, err := svc.List(ctx, nil)
		require.NoError(t, err)
		assert.Len(t, list, 3)
	})

	t.Run("filter by status", func(t *testing.T) {
		list, err := svc.List(ctx, ptr.Ptr(domain.StatusPending))
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "1", list[0].ID)
		assert.Equal(t, "3", list[1].ID)
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := svc.List(ctx, ptr.Ptr(domain.ReservationStatus("cancelled")))
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestRemove(t *testing.T) {
	repo := &fakeReservationRepo{list: fixtures()}
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.Remove(context.Background(), "2"))
	assert.Equal(t, "2", repo.removedID)
}

func TestRemove_MissingIsNoOp(t *testing.T) {
	repo := &fakeReservationRepo{removeErr: reservationRepo.ErrReservationNotFound}
	svc := NewService(repo, nopLogger{})

	assert.NoError(t, svc.Remove(context.Background(), "missing"))
}

func TestRemove_RepositoryFailure(t *testing.T) {
	repo := &fakeReservationRepo{removeErr: errors.New("disk full")}
	svc := NewService(repo, nopLogger{})

	assert.ErrorIs(t, svc.Remove(context.Background(), "1"), ErrInternal)
}
