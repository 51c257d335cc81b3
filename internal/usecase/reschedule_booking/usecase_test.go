package reschedule_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	bookingRepository "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/booking"
	slotRepository "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/slot"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking

	movedToSlot   int64
	movedStatus   domain.BookingStatus
	movedStartsAt time.Time
	movedEndsAt   time.Time
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepository.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) MoveToSlot(_ context.Context, id, slotID int64, startsAt, endsAt time.Time, status domain.BookingStatus) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepository.ErrBookingNotFound
	}
	f.movedToSlot = slotID
	f.movedStatus = status
	f.movedStartsAt = startsAt
	f.movedEndsAt = endsAt

	updated := *b
	updated.SlotID = slotID
	updated.StartsAt = startsAt
	updated.EndsAt = endsAt
	updated.Status = status
	updated.UpdatedAt = time.Now().UTC()
	return &updated, nil
}

type fakeSlotRepo struct {
	slots map[int64]*domain.AvailabilitySlot

	released   []int64
	booked     map[int64]int64
	conflictOn int64
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

func (f *fakeSlotRepo) MarkBooked(_ context.Context, slotID, bookingID int64) error {
	if slotID == f.conflictOn {
		return slotRepository.ErrSlotConflict
	}
	if f.booked == nil {
		f.booked = make(map[int64]int64)
	}
	f.booked[slotID] = bookingID
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
		StartsAt:   time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
		EndsAt:     time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC),
		Status:     domain.BookingStatusConfirmed,
	}
}

func oldSlot() *domain.AvailabilitySlot {
	bookingID := int64(7)
	return &domain.AvailabilitySlot{
		ID:         1,
		WorkerID:   10,
		BusinessID: 20,
		StartsAt:   time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
		EndsAt:     time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC),
		Status:     domain.SlotStatusBooked,
		BookingID:  &bookingID,
	}
}

func freeSlot() *domain.AvailabilitySlot {
	return &domain.AvailabilitySlot{
		ID:         2,
		WorkerID:   10,
		BusinessID: 20,
		StartsAt:   time.Date(2025, 6, 3, 14, 0, 0, 0, time.UTC),
		EndsAt:     time.Date(2025, 6, 3, 14, 30, 0, 0, time.UTC),
		Status:     domain.SlotStatusAvailable,
	}
}

func testRepos() (*fakeBookingRepo, *fakeSlotRepo) {
	bookings := &fakeBookingRepo{bookings: map[int64]*domain.Booking{7: activeBooking()}}
	slots := &fakeSlotRepo{slots: map[int64]*domain.AvailabilitySlot{1: oldSlot(), 2: freeSlot()}}
	return bookings, slots
}

func newTestUseCase(bookings *fakeBookingRepo, slots *fakeSlotRepo) *UseCase {
	return NewUseCase(bookings, slots, &fakeTxManager{}, nopLogger{})
}

func TestExecute_MovesBookingToNewSlot(t *testing.T) {
	bookings, slots := testRepos()
	uc := newTestUseCase(bookings, slots)

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 7, NewSlotID: 2})
	require.NoError(t, err)

	assert.Equal(t, int64(2), resp.SlotID)
	assert.Equal(t, string(domain.BookingStatusRescheduled), resp.Status)

	// Окно бронирования переписано окном нового слота
	assert.Equal(t, time.Date(2025, 6, 3, 14, 0, 0, 0, time.UTC), resp.StartsAt)
	assert.Equal(t, time.Date(2025, 6, 3, 14, 30, 0, 0, time.UTC), resp.EndsAt)

	// Старый слот освобожден, новый занят тем же бронированием
	assert.Equal(t, []int64{1}, slots.released)
	assert.Equal(t, int64(7), slots.booked[2])
	assert.Equal(t, domain.BookingStatusRescheduled, bookings.movedStatus)
}

func TestExecute_BookingNotFound(t *testing.T) {
	_, slots := testRepos()
	uc := newTestUseCase(&fakeBookingRepo{}, slots)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 7, NewSlotID: 2})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_AlreadyFinalized(t *testing.T) {
	bookings, slots := testRepos()
	bookings.bookings[7].Status = domain.BookingStatusCompleted
	uc := newTestUseCase(bookings, slots)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 7, NewSlotID: 2})
	assert.ErrorIs(t, err, ErrAlreadyFinalized)
	assert.Empty(t, slots.released)
}

func TestExecute_SameSlot(t *testing.T) {
	bookings, slots := testRepos()
	uc := newTestUseCase(bookings, slots)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 7, NewSlotID: 1})
	assert.ErrorIs(t, err, ErrSameSlot)
}

func TestExecute_NewSlotNotFound(t *testing.T) {
	bookings, slots := testRepos()
	uc := newTestUseCase(bookings, slots)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 7, NewSlotID: 42})
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_WorkerMismatch(t *testing.T) {
	bookings, slots := testRepos()
	slots.slots[2].WorkerID = 55
	uc := newTestUseCase(bookings, slots)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 7, NewSlotID: 2})
	assert.ErrorIs(t, err, ErrWorkerMismatch)
}

func TestExecute_NewSlotNotAvailable(t *testing.T) {
	bookings, slots := testRepos()
	slots.slots[2].Status = domain.SlotStatusUnavailable
	uc := newTestUseCase(bookings, slots)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 7, NewSlotID: 2})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_DurationMismatch(t *testing.T) {
	bookings, slots := testRepos()
	slots.slots[2].EndsAt = slots.slots[2].StartsAt.Add(time.Hour)
	uc := newTestUseCase(bookings, slots)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 7, NewSlotID: 2})
	assert.ErrorIs(t, err, ErrDurationMismatch)
}

func TestExecute_OldSlotNotLinked(t *testing.T) {
	bookings, slots := testRepos()
	slots.slots[1].BookingID = nil
	uc := newTestUseCase(bookings, slots)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 7, NewSlotID: 2})
	assert.ErrorIs(t, err, ErrDataIntegrity)
	assert.Empty(t, slots.released)
}

func TestExecute_ConcurrentConflictOnNewSlot(t *testing.T) {
	bookings, slots := testRepos()
	slots.conflictOn = 2
	uc := newTestUseCase(bookings, slots)

	_, err := uc.Execute(context.Background(), &Request{BookingID: 7, NewSlotID: 2})
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeSlotRepo{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 0, NewSlotID: 2})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{BookingID: 7, NewSlotID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
