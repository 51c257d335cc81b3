package cancel_booking

import (
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	bookingRepository "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/booking"
	slotRepository "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/slot"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking

	cancelledStatus domain.BookingStatus
	cancelledReason string
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepository.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, status domain.BookingStatus, reason string) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepository.ErrBookingNotFound
	}
	f.cancelledStatus = status
	f.cancelledReason = reason

	now := time.Now().UTC()
	updated := *b
	updated.Status = status
	updated.CancellationReason = &reason
	updated.CancelledAt = &now
	updated.UpdatedAt = now
	return &updated, nil
}

type fakeSlotRepo struct {
	slots    map[int64]*domain.AvailabilitySlot
	released []int64
}

func (f *fakeSlotRepo) GetByID(_ context.Context, id int64) (*domain.AvailabilitySlot, error) {
	s, ok := f.slots[id]
	if !ok {
		return nil, slotRepository.ErrSlotNotFound
	}
	return s, nil
}

func (f *fakeSlotRepo) Release(_ context.Context, id int64) error {
	f.released = append(f.released, id)
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

func activeBooking() *domain.Booking {
	return &domain.Booking{
		ID:         7,
		WorkerID:   10,
		BusinessID: 20,
		ServiceID:  3,
		CustomerID: 100,
		SlotID:     1,
		Status:     domain.BookingStatusConfirmed,
	}
}

func linkedSlot() *domain.AvailabilitySlot {
	bookingID := int64(7)
	return &domain.AvailabilitySlot{
		ID:         1,
		WorkerID:   10,
		BusinessID: 20,
		Status:     domain.SlotStatusBooked,
		BookingID:  &bookingID,
	}
}

func newTestUseCase(bookings *fakeBookingRepo, slots *fakeSlotRepo) *UseCase {
	return NewUseCase(bookings, slots, &fakeTxManager{}, nopLogger{})
}

func TestExecute_CancelByCustomer(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{7: activeBooking()}}
	slots := &fakeSlotRepo{slots: map[int64]*domain.AvailabilitySlot{1: linkedSlot()}}
	uc := newTestUseCase(bookings, slots)

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID:   7,
		Reason:      "не смогу прийти",
		CancelledBy: domain.CancelActorCustomer,
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.BookingStatusCancelledByCustomer), resp.Status)
	assert.Equal(t, "не смогу прийти", resp.CancellationReason)
	assert.False(t, resp.CancelledAt.IsZero())
	assert.Equal(t, []int64{1}, slots.released)
}

func TestExecute_CancelByVendor(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{7: activeBooking()}}
	slots := &fakeSlotRepo{slots: map[int64]*domain.AvailabilitySlot{1: linkedSlot()}}
	uc := newTestUseCase(bookings, slots)

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID:   7,
		Reason:      "мастер заболел",
		CancelledBy: domain.CancelActorVendor,
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.BookingStatusCancelledByVendor), resp.Status)
	assert.Equal(t, domain.BookingStatusCancelledByVendor, bookings.cancelledStatus)
}

func TestExecute_ReasonTrimmedAndTruncated(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{7: activeBooking()}}
	slots := &fakeSlotRepo{slots: map[int64]*domain.AvailabilitySlot{1: linkedSlot()}}
	uc := newTestUseCase(bookings, slots)

	longReason := "  " + strings.Repeat("x", domain.MaxCancellationReasonLength+50) + "  "
	_, err := uc.Execute(context.Background(), &Request{
		BookingID:   7,
		Reason:      longReason,
		CancelledBy: domain.CancelActorCustomer,
	})
	require.NoError(t, err)
	assert.Len(t, bookings.cancelledReason, domain.MaxCancellationReasonLength)
}

func TestExecute_ReasonTruncatedOnRuneBoundary(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{7: activeBooking()}}
	slots := &fakeSlotRepo{slots: map[int64]*domain.AvailabilitySlot{1: linkedSlot()}}
	uc := newTestUseCase(bookings, slots)

	// Кириллическая причина длиннее лимита: обрезка не должна рвать руны
	longReason := strings.Repeat("ы", domain.MaxCancellationReasonLength+10)
	_, err := uc.Execute(context.Background(), &Request{
		BookingID:   7,
		Reason:      longReason,
		CancelledBy: domain.CancelActorCustomer,
	})
	require.NoError(t, err)
	assert.True(t, utf8.ValidString(bookings.cancelledReason))
	assert.Equal(t, domain.MaxCancellationReasonLength, utf8.RuneCountInString(bookings.cancelledReason))
}

func TestExecute_BookingNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeSlotRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID:   7,
		Reason:      "передумал",
		CancelledBy: domain.CancelActorCustomer,
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_AlreadyFinalized(t *testing.T) {
	for _, status := range domain.TerminalBookingStatuses {
		booking := activeBooking()
		booking.Status = status
		bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{7: booking}}
		slots := &fakeSlotRepo{slots: map[int64]*domain.AvailabilitySlot{1: linkedSlot()}}
		uc := newTestUseCase(bookings, slots)

		_, err := uc.Execute(context.Background(), &Request{
			BookingID:   7,
			Reason:      "передумал",
			CancelledBy: domain.CancelActorCustomer,
		})
		assert.ErrorIs(t, err, ErrAlreadyFinalized, "status %s", status)
		assert.Empty(t, slots.released)
	}
}

func TestExecute_DataIntegrity(t *testing.T) {
	t.Run("слот бронирования отсутствует", func(t *testing.T) {
		bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{7: activeBooking()}}
		uc := newTestUseCase(bookings, &fakeSlotRepo{})

		_, err := uc.Execute(context.Background(), &Request{
			BookingID:   7,
			Reason:      "передумал",
			CancelledBy: domain.CancelActorCustomer,
		})
		assert.ErrorIs(t, err, ErrDataIntegrity)
	})

	t.Run("слот связан с другим бронированием", func(t *testing.T) {
		otherBooking := int64(99)
		slot := linkedSlot()
		slot.BookingID = &otherBooking
		bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{7: activeBooking()}}
		slots := &fakeSlotRepo{slots: map[int64]*domain.AvailabilitySlot{1: slot}}
		uc := newTestUseCase(bookings, slots)

		_, err := uc.Execute(context.Background(), &Request{
			BookingID:   7,
			Reason:      "передумал",
			CancelledBy: domain.CancelActorCustomer,
		})
		assert.ErrorIs(t, err, ErrDataIntegrity)
	})
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeSlotRepo{})

	for name, req := range map[string]*Request{
		"нулевой bookingID":  {BookingID: 0, Reason: "x", CancelledBy: domain.CancelActorCustomer},
		"пустая причина":     {BookingID: 7, Reason: "   ", CancelledBy: domain.CancelActorCustomer},
		"неизвестный актор":  {BookingID: 7, Reason: "x", CancelledBy: "manager"},
	} {
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput, name)
	}
}
