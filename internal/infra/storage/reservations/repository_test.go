package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gourmethaven/reservation-service/internal/domain"
	"github.com/gourmethaven/reservation-service/internal/infra/kvstore/filestore"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestRepository(t *testing.T) (*Repository, *filestore.Store) {
	t.Helper()

	store, err := filestore.New(t.TempDir())
	require.NoError(t, err)

	return NewRepository(store, nopLogger{}), store
}

func makeReservation(id string) domain.Reservation {
	return domain.Reservation{
		ID:           id,
		CustomerName: "Maria Silva",
		Phone:        "+351 912 345 678",
		Email:        "maria@example.com",
		Time:         "19:30",
		Participants: 4,
		Dishes: []domain.Dish{
			{ID: "1", Name: "Francesinha", Quantity: 2, Price: 15},
		},
		Status:      domain.StatusPending,
		TotalAmount: 30,
		CreatedAt:   time.Date(2025, 5, 10, 18, 0, 0, 0, time.UTC),
	}
}

func TestRepository_ListEmpty(t *testing.T) {
	repo, _ := newTestRepository(t)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRepository_AddPrepends(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, makeReservation("a")))
	require.NoError(t, repo.Add(ctx, makeReservation("b")))
	require.NoError(t, repo.Add(ctx, makeReservation("c")))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "c", list[0].ID)
	assert.Equal(t, "b", list[1].ID)
	assert.Equal(t, "a", list[2].ID)
}

func TestRepository_GetByID(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	original := makeReservation("a")
	require.NoError(t, repo.Add(ctx, original))

	got, err := repo.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, original, *got)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	original := makeReservation("a")
	require.NoError(t, repo.Add(ctx, original))
	require.NoError(t, repo.UpdateStatus(ctx, "a", domain.StatusApproved))

	got, err := repo.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, got.Status)

	// остальные поля не меняются
	expected := original
	expected.Status = domain.StatusApproved
	assert.Equal(t, expected, *got)
}

func TestRepository_UpdateStatusMissing(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, makeReservation("a")))

	err := repo.UpdateStatus(ctx, "missing", domain.StatusApproved)
	assert.ErrorIs(t, err, ErrReservationNotFound)

	// коллекция не тронута
	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, domain.StatusPending, list[0].Status)
}

func TestRepository_Remove(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, makeReservation("a")))
	require.NoError(t, repo.Add(ctx, makeReservation("b")))

	require.NoError(t, repo.Remove(ctx, "a"))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "b", list[0].ID)

	assert.ErrorIs(t, repo.Remove(ctx, "a"), ErrReservationNotFound)
}

func TestRepository_CorruptBlob(t *testing.T) {
	repo, store := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.NamespaceReservations, []byte("{not json")))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	// запись поверх мусора восстанавливает коллекцию
	require.NoError(t, repo.Add(ctx, makeReservation("a")))

	list, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
}
