package update_booking_status

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	bookingRepository "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/booking"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking

	updatedStatus domain.BookingStatus
	updateCalls   int
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepository.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	if _, ok := f.bookings[id]; !ok {
		return bookingRepository.ErrBookingNotFound
	}
	f.updatedStatus = status
	f.updateCalls++
	return nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:         7,
		WorkerID:   10,
		BusinessID: 20,
		SlotID:     1,
		Status:     domain.BookingStatusPendingConfirmation,
	}
}

func newTestUseCase(repo *fakeBookingRepo) *UseCase {
	return NewUseCase(repo, &fakeTxManager{}, nopLogger{})
}

func TestExecute_LifecycleStatuses(t *testing.T) {
	for _, target := range []string{"confirmed", "completed", "no_show"} {
		repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{7: pendingBooking()}}
		uc := newTestUseCase(repo)

		resp, err := uc.Execute(context.Background(), &Request{BookingID: 7, Status: target})
		require.NoError(t, err, target)

		assert.Equal(t, target, resp.Status)
		assert.Equal(t, domain.BookingStatus(target), repo.updatedStatus)
		assert.Equal(t, 1, repo.updateCalls)
	}
}

func TestExecute_BookingNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 7, Status: "confirmed"})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_AlreadyFinalized(t *testing.T) {
	booking := pendingBooking()
	booking.Status = domain.BookingStatusCancelledByCustomer
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{7: booking}}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 7, Status: "completed"})
	assert.ErrorIs(t, err, ErrAlreadyFinalized)
	assert.Equal(t, 0, repo.updateCalls)
}

func TestExecute_StatusNotAllowed(t *testing.T) {
	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{7: pendingBooking()}}
	uc := newTestUseCase(repo)

	// Отмена и перенос идут через собственные операции
	for _, target := range []string{"cancelled_by_customer", "cancelled_by_vendor", "rescheduled", "pending_confirmation"} {
		_, err := uc.Execute(context.Background(), &Request{BookingID: 7, Status: target})
		assert.ErrorIs(t, err, ErrStatusNotAllowed, target)
	}
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 0, Status: "confirmed"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{BookingID: 7, Status: "done"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
