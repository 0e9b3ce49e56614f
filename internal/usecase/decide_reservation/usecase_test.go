package decide_reservation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gourmethaven/reservation-service/internal/domain"
	reservationRepo "github.com/gourmethaven/reservation-service/internal/infra/storage/reservations"
	"github.com/gourmethaven/reservation-service/internal/notifier"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeReservationRepo struct {
	reservation *domain.Reservation
	getErr      error
	updateErr   error

	updatedID     string
	updatedStatus domain.ReservationStatus
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id string) (*domain.Reservation, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	res := *f.reservation
	return &res, nil
}

func (f *fakeReservationRepo) UpdateStatus(_ context.Context, id string, status domain.ReservationStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updatedID = id
	f.updatedStatus = status
	return nil
}

type fakeSender struct {
	sent []notifier.Email
	err  error
}

func (f *fakeSender) Send(_ context.Context, email notifier.Email) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, email)
	return nil
}

func pendingReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:           "42",
		CustomerName: "Maria Silva",
		Email:        "maria@example.com",
		Time:         "19:30",
		Participants: 4,
		Status:       domain.StatusPending,
		TotalAmount:  55,
	}
}

func newTestUseCase(repo *fakeReservationRepo, sender *fakeSender) *UseCase {
	builder := notifier.NewMessageBuilder(notifier.Info{
		Name:    "Gourmet Haven",
		Address: "123 Culinary Street",
		Phone:   "+351 123 456 789",
		Email:   "contact@gourmethaven.com",
	})
	return NewUseCase(repo, builder, sender, nopLogger{})
}

func TestExecute_Approve(t *testing.T) {
	repo := &fakeReservationRepo{reservation: pendingReservation()}
	sender := &fakeSender{}
	uc := newTestUseCase(repo, sender)

	resp, err := uc.Execute(context.Background(), &Request{ReservationID: "42", Decision: "approved"})
	require.NoError(t, err)

	assert.True(t, resp.Updated)
	assert.True(t, resp.NotificationSent)
	assert.Equal(t, "42", repo.updatedID)
	assert.Equal(t, domain.StatusApproved, repo.updatedStatus)

	require.Len(t, sender.sent, 1)
	email := sender.sent[0]
	assert.Equal(t, "maria@example.com", email.To)
	assert.Equal(t, "approved", email.Decision)
	assert.Contains(t, email.Subject, "Confirmed")
	assert.Contains(t, email.HTML, "Maria Silva")
}

func TestExecute_Reject(t *testing.T) {
	repo := &fakeReservationRepo{reservation: pendingReservation()}
	sender := &fakeSender{}
	uc := newTestUseCase(repo, sender)

	resp, err := uc.Execute(context.Background(), &Request{ReservationID: "42", Decision: "rejected"})
	require.NoError(t, err)

	assert.True(t, resp.Updated)
	assert.Equal(t, domain.StatusRejected, repo.updatedStatus)

	require.Len(t, sender.sent, 1)
	assert.Contains(t, sender.sent[0].Subject, "Update")
}

func TestExecute_InvalidDecision(t *testing.T) {
	uc := newTestUseCase(&fakeReservationRepo{reservation: pendingReservation()}, &fakeSender{})

	for _, decision := range []string{"pending", "cancelled", ""} {
		_, err := uc.Execute(context.Background(), &Request{ReservationID: "42", Decision: decision})
		assert.ErrorIs(t, err, ErrInvalidDecision, "decision %q", decision)
	}
}

func TestExecute_NotFound(t *testing.T) {
	repo := &fakeReservationRepo{getErr: reservationRepo.ErrReservationNotFound}
	sender := &fakeSender{}
	uc := newTestUseCase(repo, sender)

	resp, err := uc.Execute(context.Background(), &Request{ReservationID: "missing", Decision: "approved"})
	require.NoError(t, err)

	assert.False(t, resp.Updated)
	assert.False(t, resp.NotificationSent)
	assert.Empty(t, sender.sent)
}

func TestExecute_AlreadyDecided(t *testing.T) {
	reservation := pendingReservation()
	reservation.Status = domain.StatusApproved

	repo := &fakeReservationRepo{reservation: reservation}
	sender := &fakeSender{}
	uc := newTestUseCase(repo, sender)

	resp, err := uc.Execute(context.Background(), &Request{ReservationID: "42", Decision: "rejected"})
	require.NoError(t, err)

	assert.False(t, resp.Updated)
	assert.Empty(t, repo.updatedID)
	assert.Empty(t, sender.sent)
}

func TestExecute_SendFailureKeepsDecision(t *testing.T) {
	repo := &fakeReservationRepo{reservation: pendingReservation()}
	sender := &fakeSender{err: errors.New("broker down")}
	uc := newTestUseCase(repo, sender)

	resp, err := uc.Execute(context.Background(), &Request{ReservationID: "42", Decision: "approved"})
	require.NoError(t, err)

	assert.True(t, resp.Updated)
	assert.False(t, resp.NotificationSent)
	assert.Equal(t, domain.StatusApproved, repo.updatedStatus)
}

func TestExecute_RepositoryFailure(t *testing.T) {
	repo := &fakeReservationRepo{reservation: pendingReservation(), updateErr: errors.New("disk full")}
	uc := newTestUseCase(repo, &fakeSender{})

	_, err := uc.Execute(context.Background(), &Request{ReservationID: "42", Decision: "approved"})
	assert.ErrorIs(t, err, ErrInternal)
}
