package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/bookings/models"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking

	lastStatuses []domain.BookingStatus
}

func (f *fakeBookingRepo) ListByWorker(_ context.Context, workerID int64, _, _ time.Time, statuses []domain.BookingStatus) ([]*domain.Booking, error) {
	f.lastStatuses = statuses

	var result []*domain.Booking
	for _, b := range f.bookings {
		if b.WorkerID != workerID {
			continue
		}
		if len(statuses) > 0 {
			matched := false
			for _, s := range statuses {
				if b.Status == s {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}
		result = append(result, b)
	}
	return result, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func seededRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		bookings: []*domain.Booking{
			{ID: 1, WorkerID: 10, Status: domain.BookingStatusConfirmed},
			{ID: 2, WorkerID: 10, Status: domain.BookingStatusCompleted},
			{ID: 3, WorkerID: 10, Status: domain.BookingStatusPendingConfirmation},
			{ID: 4, WorkerID: 99, Status: domain.BookingStatusConfirmed},
		},
	}
}

func listRequest() *models.ListBookingsRequest {
	return &models.ListBookingsRequest{
		WorkerID: 10,
		From:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		To:       time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestList(t *testing.T) {
	repo := seededRepo()
	svc := NewService(repo, nopLogger{})

	resp, err := svc.List(context.Background(), listRequest())
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 3)
	assert.Empty(t, repo.lastStatuses)
}

func TestList_StatusFilter(t *testing.T) {
	repo := seededRepo()
	svc := NewService(repo, nopLogger{})

	req := listRequest()
	status := "completed"
	req.Status = &status

	resp, err := svc.List(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, int64(2), resp.Bookings[0].ID)
}

func TestList_ActiveOnly(t *testing.T) {
	repo := seededRepo()
	svc := NewService(repo, nopLogger{})

	req := listRequest()
	req.ActiveOnly = true

	resp, err := svc.List(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)
	assert.Equal(t, domain.ActiveBookingStatuses, repo.lastStatuses)
}

func TestList_Validation(t *testing.T) {
	svc := NewService(seededRepo(), nopLogger{})

	req := listRequest()
	req.WorkerID = 0
	_, err := svc.List(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req = listRequest()
	req.To = req.From
	_, err = svc.List(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	req = listRequest()
	badStatus := "finished"
	req.Status = &badStatus
	_, err = svc.List(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidStatus)

	req = listRequest()
	status := "confirmed"
	req.Status = &status
	req.ActiveOnly = true
	_, err = svc.List(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
