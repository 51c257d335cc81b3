package slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	slotRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/slots/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
)

type fakeSlotRepo struct {
	slots  map[int64]*domain.AvailabilitySlot
	nextID int64

	lastListStatus *domain.SlotStatus
}

func (f *fakeSlotRepo) Create(_ context.Context, slot *domain.AvailabilitySlot) (*domain.AvailabilitySlot, error) {
	f.nextID++
	saved := *slot
	saved.ID = f.nextID
	if f.slots == nil {
		f.slots = make(map[int64]*domain.AvailabilitySlot)
	}
	f.slots[saved.ID] = &saved
	return &saved, nil
}

func (f *fakeSlotRepo) GetByID(_ context.Context, id int64) (*domain.AvailabilitySlot, error) {
	s, ok := f.slots[id]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	return s, nil
}

func (f *fakeSlotRepo) ListByWorker(_ context.Context, workerID int64, _, _ time.Time, status *domain.SlotStatus) ([]*domain.AvailabilitySlot, error) {
	f.lastListStatus = status
	var result []*domain.AvailabilitySlot
	for _, s := range f.slots {
		if s.WorkerID == workerID {
			result = append(result, s)
		}
	}
	return result, nil
}

func (f *fakeSlotRepo) Update(_ context.Context, slot *domain.AvailabilitySlot) error {
	f.slots[slot.ID] = slot
	return nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(repo *fakeSlotRepo) *Service {
	return NewService(repo, &fakeTxManager{}, nopLogger{})
}

func storedSlot(status domain.SlotStatus) *fakeSlotRepo {
	return &fakeSlotRepo{
		nextID: 1,
		slots: map[int64]*domain.AvailabilitySlot{
			1: {
				ID:         1,
				WorkerID:   10,
				BusinessID: 20,
				StartsAt:   time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
				EndsAt:     time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC),
				Status:     status,
			},
		},
	}
}

func TestCreateManual(t *testing.T) {
	svc := newTestService(&fakeSlotRepo{})

	resp, err := svc.CreateManual(context.Background(), &models.CreateSlotRequest{
		WorkerID:   10,
		BusinessID: 20,
		StartsAt:   time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
		EndsAt:     time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.SlotStatusAvailable), resp.Status)
	assert.Nil(t, resp.GeneratingScheduleID)
}

func TestCreateManual_BookedStatusRejected(t *testing.T) {
	svc := newTestService(&fakeSlotRepo{})

	for _, status := range []string{"booked", "pending"} {
		_, err := svc.CreateManual(context.Background(), &models.CreateSlotRequest{
			WorkerID:   10,
			BusinessID: 20,
			StartsAt:   time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC),
			EndsAt:     time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC),
			Status:     &status,
		})
		assert.ErrorIs(t, err, ErrInvalidStatus, status)
	}
}

func TestCreateManual_InvalidWindow(t *testing.T) {
	svc := newTestService(&fakeSlotRepo{})

	starts := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	_, err := svc.CreateManual(context.Background(), &models.CreateSlotRequest{
		WorkerID:   10,
		BusinessID: 20,
		StartsAt:   starts,
		EndsAt:     starts,
	})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestList_StatusFilter(t *testing.T) {
	repo := storedSlot(domain.SlotStatusAvailable)
	svc := newTestService(repo)

	status := "available"
	resp, err := svc.List(context.Background(), &models.ListSlotsRequest{
		WorkerID: 10,
		From:     time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		To:       time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
		Status:   &status,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 1)
	require.NotNil(t, repo.lastListStatus)
	assert.Equal(t, domain.SlotStatusAvailable, *repo.lastListStatus)

	badStatus := "busy"
	_, err = svc.List(context.Background(), &models.ListSlotsRequest{
		WorkerID: 10,
		From:     time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		To:       time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
		Status:   &badStatus,
	})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdate_StatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.SlotStatus
		to      string
		wantErr error
	}{
		{name: "available -> unavailable", from: domain.SlotStatusAvailable, to: "unavailable"},
		{name: "available -> break", from: domain.SlotStatusAvailable, to: "break"},
		{name: "available -> pending", from: domain.SlotStatusAvailable, to: "pending"},
		{name: "unavailable -> available", from: domain.SlotStatusUnavailable, to: "available"},
		{name: "break -> available", from: domain.SlotStatusBreak, to: "available"},
		{name: "pending -> available", from: domain.SlotStatusPending, to: "available"},
		{name: "booked -> available запрещен", from: domain.SlotStatusBooked, to: "available", wantErr: ErrInvalidTransition},
		{name: "booked -> unavailable запрещен", from: domain.SlotStatusBooked, to: "unavailable", wantErr: ErrInvalidTransition},
		{name: "любой -> booked только через бронирование", from: domain.SlotStatusAvailable, to: "booked", wantErr: ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := storedSlot(tt.from)
			if tt.from == domain.SlotStatusBooked {
				repo.slots[1].BookingID = ptr.Ptr(int64(7))
			}
			svc := newTestService(repo)

			resp, err := svc.Update(context.Background(), &models.UpdateSlotRequest{
				SlotID: 1,
				Status: &tt.to,
			})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, resp.Status)
		})
	}
}

func TestUpdate_TimeWindow(t *testing.T) {
	repo := storedSlot(domain.SlotStatusAvailable)
	svc := newTestService(repo)

	newStart := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	newEnd := time.Date(2025, 6, 2, 10, 30, 0, 0, time.UTC)
	resp, err := svc.Update(context.Background(), &models.UpdateSlotRequest{
		SlotID:   1,
		StartsAt: &newStart,
		EndsAt:   &newEnd,
	})
	require.NoError(t, err)
	assert.Equal(t, newStart, resp.StartsAt)
	assert.Equal(t, newEnd, resp.EndsAt)
}

func TestUpdate_BookedSlotWindowFrozen(t *testing.T) {
	repo := storedSlot(domain.SlotStatusBooked)
	repo.slots[1].BookingID = ptr.Ptr(int64(7))
	svc := newTestService(repo)

	newStart := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	newEnd := time.Date(2025, 6, 2, 10, 30, 0, 0, time.UTC)
	_, err := svc.Update(context.Background(), &models.UpdateSlotRequest{
		SlotID:   1,
		StartsAt: &newStart,
		EndsAt:   &newEnd,
	})
	assert.ErrorIs(t, err, ErrSlotBooked)
}

func TestUpdate_Validation(t *testing.T) {
	svc := newTestService(&fakeSlotRepo{})

	_, err := svc.Update(context.Background(), &models.UpdateSlotRequest{SlotID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	_, err = svc.Update(context.Background(), &models.UpdateSlotRequest{SlotID: 1, StartsAt: &start})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	status := "available"
	_, err = svc.Update(context.Background(), &models.UpdateSlotRequest{SlotID: 42, Status: &status})
	assert.ErrorIs(t, err, ErrSlotNotFound)
}
