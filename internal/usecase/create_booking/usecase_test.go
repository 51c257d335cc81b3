package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	slotRepository "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/slot"
	catalogClient "github.com/m04kA/SMC-AvailabilityService/internal/integrations/catalogservice"
)

type fakeBookingRepo struct {
	nextID  int64
	created []*domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	f.nextID++
	saved := *b
	saved.ID = f.nextID
	saved.CreatedAt = time.Now().UTC()
	saved.UpdatedAt = saved.CreatedAt
	f.created = append(f.created, &saved)
	return &saved, nil
}

type fakeSlotRepo struct {
	slots       map[int64]*domain.AvailabilitySlot
	conflictOn  int64
	bookedSlots map[int64]int64 // slotID -> bookingID
}

func (f *fakeSlotRepo) GetByID(_ context.Context, id int64) (*domain.AvailabilitySlot, error) {
	s, ok := f.slots[id]
	if !ok {
		return nil, slotRepository.ErrSlotNotFound
	}
	return s, nil
}

func (f *fakeSlotRepo) MarkBooked(_ context.Context, slotID, bookingID int64) error {
	if slotID == f.conflictOn {
		return slotRepository.ErrSlotConflict
	}
	if f.bookedSlots == nil {
		f.bookedSlots = make(map[int64]int64)
	}
	f.bookedSlots[slotID] = bookingID
	return nil
}

type fakeCatalogClient struct {
	services map[int64]*catalogClient.Service
}

func (f *fakeCatalogClient) GetService(_ context.Context, _, serviceID int64) (*catalogClient.Service, error) {
	s, ok := f.services[serviceID]
	if !ok {
		return nil, catalogClient.ErrServiceNotFound
	}
	return s, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func availableSlot() *domain.AvailabilitySlot {
	return &domain.AvailabilitySlot{
		ID:         1,
		WorkerID:   10,
		BusinessID: 20,
		StartsAt:   time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
		EndsAt:     time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC),
		Status:     domain.SlotStatusAvailable,
	}
}

func haircut() *catalogClient.Service {
	price := 1500.0
	return &catalogClient.Service{
		ID:              3,
		BusinessID:      20,
		Name:            "Стрижка",
		Price:           &price,
		DurationMinutes: 30,
		IsActive:        true,
	}
}

func validRequest() *Request {
	return &Request{SlotID: 1, BusinessID: 20, ServiceID: 3, CustomerID: 100}
}

func newTestUseCase(bookings *fakeBookingRepo, slots *fakeSlotRepo, catalog *fakeCatalogClient) *UseCase {
	return NewUseCase(bookings, slots, catalog, &fakeTxManager{}, nopLogger{})
}

func TestExecute_Success(t *testing.T) {
	bookings := &fakeBookingRepo{}
	slots := &fakeSlotRepo{slots: map[int64]*domain.AvailabilitySlot{1: availableSlot()}}
	catalog := &fakeCatalogClient{services: map[int64]*catalogClient.Service{3: haircut()}}
	uc := newTestUseCase(bookings, slots, catalog)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, int64(10), resp.WorkerID)
	assert.Equal(t, int64(20), resp.BusinessID)
	assert.Equal(t, int64(1), resp.SlotID)
	assert.Equal(t, string(domain.BookingStatusPendingConfirmation), resp.Status)

	// Окно слота скопировано в бронирование
	assert.Equal(t, time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC), resp.StartsAt)
	assert.Equal(t, time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC), resp.EndsAt)

	// Снимок данных услуги
	assert.Equal(t, "Стрижка", resp.ServiceName)
	assert.Equal(t, 1500.0, resp.ServicePrice)

	// Слот занят созданным бронированием
	assert.Equal(t, int64(1), slots.bookedSlots[1])
}

func TestExecute_NilPriceBecomesZero(t *testing.T) {
	service := haircut()
	service.Price = nil
	bookings := &fakeBookingRepo{}
	slots := &fakeSlotRepo{slots: map[int64]*domain.AvailabilitySlot{1: availableSlot()}}
	catalog := &fakeCatalogClient{services: map[int64]*catalogClient.Service{3: service}}
	uc := newTestUseCase(bookings, slots, catalog)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, 0.0, resp.ServicePrice)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	slots := &fakeSlotRepo{slots: map[int64]*domain.AvailabilitySlot{1: availableSlot()}}
	uc := newTestUseCase(&fakeBookingRepo{}, slots, &fakeCatalogClient{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_SlotNotFound(t *testing.T) {
	catalog := &fakeCatalogClient{services: map[int64]*catalogClient.Service{3: haircut()}}
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeSlotRepo{}, catalog)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_SlotOfAnotherBusiness(t *testing.T) {
	slot := availableSlot()
	slot.BusinessID = 99
	slots := &fakeSlotRepo{slots: map[int64]*domain.AvailabilitySlot{1: slot}}
	catalog := &fakeCatalogClient{services: map[int64]*catalogClient.Service{3: haircut()}}
	uc := newTestUseCase(&fakeBookingRepo{}, slots, catalog)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_SlotNotAvailable(t *testing.T) {
	for _, status := range []domain.SlotStatus{
		domain.SlotStatusBooked,
		domain.SlotStatusPending,
		domain.SlotStatusUnavailable,
		domain.SlotStatusBreak,
	} {
		slot := availableSlot()
		slot.Status = status
		slots := &fakeSlotRepo{slots: map[int64]*domain.AvailabilitySlot{1: slot}}
		catalog := &fakeCatalogClient{services: map[int64]*catalogClient.Service{3: haircut()}}
		uc := newTestUseCase(&fakeBookingRepo{}, slots, catalog)

		_, err := uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrSlotNotAvailable, "status %s", status)
	}
}

func TestExecute_DurationMismatch(t *testing.T) {
	service := haircut()
	service.DurationMinutes = 60
	slots := &fakeSlotRepo{slots: map[int64]*domain.AvailabilitySlot{1: availableSlot()}}
	catalog := &fakeCatalogClient{services: map[int64]*catalogClient.Service{3: service}}
	uc := newTestUseCase(&fakeBookingRepo{}, slots, catalog)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDurationMismatch)
}

func TestExecute_ConcurrentConflict(t *testing.T) {
	slots := &fakeSlotRepo{
		slots:      map[int64]*domain.AvailabilitySlot{1: availableSlot()},
		conflictOn: 1,
	}
	catalog := &fakeCatalogClient{services: map[int64]*catalogClient.Service{3: haircut()}}
	uc := newTestUseCase(&fakeBookingRepo{}, slots, catalog)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeSlotRepo{}, &fakeCatalogClient{})

	for _, req := range []*Request{
		{SlotID: 0, BusinessID: 20, ServiceID: 3, CustomerID: 100},
		{SlotID: 1, BusinessID: 0, ServiceID: 3, CustomerID: 100},
		{SlotID: 1, BusinessID: 20, ServiceID: 0, CustomerID: 100},
		{SlotID: 1, BusinessID: 20, ServiceID: 3, CustomerID: 0},
	} {
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}
