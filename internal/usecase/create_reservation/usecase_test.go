package create_reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gourmethaven/reservation-service/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeReservationRepo struct {
	added []domain.Reservation
	err   error
}

func (f *fakeReservationRepo) Add(_ context.Context, reservation domain.Reservation) error {
	if f.err != nil {
		return f.err
	}
	f.added = append(f.added, reservation)
	return nil
}

type fakeCatalog struct {
	products []domain.Product
	err      error
}

func (f *fakeCatalog) List(_ context.Context) ([]domain.Product, error) {
	return f.products, f.err
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type fixedID struct{ id string }

func (f fixedID) NextID() string { return f.id }

func newTestUseCase(repo *fakeReservationRepo, catalog *fakeCatalog) *UseCase {
	uc := NewUseCase(repo, catalog, nopLogger{})
	uc.idGen = fixedID{id: "1700000000000"}
	uc.timeProvider = fixedTime{t: time.Date(2025, 5, 10, 18, 0, 0, 0, time.UTC)}
	return uc
}

func validRequest() *Request {
	return &Request{
		Customer: CustomerInfo{
			Name:  "Maria Silva",
			Phone: "+351 912 345 678",
			Email: "maria@example.com",
		},
		Details: Details{
			SelectedTime: "19:30",
			Participants: 4,
			Dishes:       map[string]int{"1": 2, "3": 1},
		},
	}
}

func TestValidateCustomerInfo(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{}, &fakeCatalog{})

	tests := []struct {
		name    string
		info    CustomerInfo
		wantErr bool
	}{
		{
			name: "all fields present",
			info: CustomerInfo{Name: "Maria", Phone: "+351 912", Email: "m@example.com"},
		},
		{
			name:    "missing name",
			info:    CustomerInfo{Phone: "+351 912", Email: "m@example.com"},
			wantErr: true,
		},
		{
			name:    "whitespace name",
			info:    CustomerInfo{Name: "   ", Phone: "+351 912", Email: "m@example.com"},
			wantErr: true,
		},
		{
			name:    "missing phone",
			info:    CustomerInfo{Name: "Maria", Email: "m@example.com"},
			wantErr: true,
		},
		{
			name:    "missing email",
			info:    CustomerInfo{Name: "Maria", Phone: "+351 912"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := uc.ValidateCustomerInfo(tt.info)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := newTestUseCase(repo, &fakeCatalog{products: domain.DefaultMenu()})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "1700000000000", resp.ID)
	assert.Equal(t, "Maria Silva", resp.CustomerName)
	assert.Equal(t, "19:30", resp.Time)
	assert.Equal(t, 4, resp.Participants)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.False(t, resp.IsPriority)

	// 2 x Francesinha (15) + 1 x Special Steak (25)
	assert.Equal(t, 55.0, resp.TotalAmount)
	require.Len(t, resp.Dishes, 2)
	assert.Equal(t, "Francesinha", resp.Dishes[0].Name)
	assert.Equal(t, "Special Steak", resp.Dishes[1].Name)

	require.Len(t, repo.added, 1)
	assert.Equal(t, domain.StatusPending, repo.added[0].Status)
	assert.Equal(t, 55.0, repo.added[0].TotalAmount)
}

func TestExecute_ZeroQuantityRemovesDish(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := newTestUseCase(repo, &fakeCatalog{products: domain.DefaultMenu()})

	req := validRequest()
	req.Details.Dishes = map[string]int{"1": 0, "2": 1}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, resp.Dishes, 1)
	assert.Equal(t, "Turkey", resp.Dishes[0].Name)
	assert.Equal(t, 20.0, resp.TotalAmount)
}

func TestExecute_NoDishes(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := newTestUseCase(repo, &fakeCatalog{products: domain.DefaultMenu()})

	req := validRequest()
	req.Details.Dishes = nil

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Empty(t, resp.Dishes)
	assert.Equal(t, 0.0, resp.TotalAmount)
}

func TestExecute_UnknownDish(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := newTestUseCase(repo, &fakeCatalog{products: domain.DefaultMenu()})

	req := validRequest()
	req.Details.Dishes = map[string]int{"99": 1}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, repo.added)
}

func TestExecute_ValidationFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{
			name:   "empty name",
			mutate: func(req *Request) { req.Customer.Name = "" },
		},
		{
			name:   "empty time",
			mutate: func(req *Request) { req.Details.SelectedTime = "" },
		},
		{
			name:   "malformed time",
			mutate: func(req *Request) { req.Details.SelectedTime = "25:99" },
		},
		{
			name:   "off grid time",
			mutate: func(req *Request) { req.Details.SelectedTime = "12:15" },
		},
		{
			name:   "before opening",
			mutate: func(req *Request) { req.Details.SelectedTime = "11:30" },
		},
		{
			name:   "participants too high",
			mutate: func(req *Request) { req.Details.Participants = 17 },
		},
		{
			name:   "negative participants",
			mutate: func(req *Request) { req.Details.Participants = -1 },
		},
		{
			name: "custom count below minimum",
			mutate: func(req *Request) {
				req.Details.Participants = domain.CustomParticipantsSentinel
				req.Details.CustomParticipants = 10
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeReservationRepo{}
			uc := newTestUseCase(repo, &fakeCatalog{products: domain.DefaultMenu()})

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Empty(t, repo.added)
		})
	}
}

func TestExecute_CustomParticipants(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := newTestUseCase(repo, &fakeCatalog{products: domain.DefaultMenu()})

	req := validRequest()
	req.Details.Participants = domain.CustomParticipantsSentinel
	req.Details.CustomParticipants = 25

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 25, resp.Participants)
}

func TestExecute_RepositoryFailure(t *testing.T) {
	repo := &fakeReservationRepo{err: errors.New("disk full")}
	uc := newTestUseCase(repo, &fakeCatalog{products: domain.DefaultMenu()})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_CatalogFailure(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := newTestUseCase(repo, &fakeCatalog{err: errors.New("storage down")})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, repo.added)
}

func TestTimestampIDGenerator_Monotonic(t *testing.T) {
	gen := &TimestampIDGenerator{}

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := gen.NextID()
		_, dup := seen[id]
		assert.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}
