package bookings

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/bookings/models"
)

// Service сервис для чтения бронирований
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// List получает бронирования работника, пересекающие диапазон [from, to)
// Фильтр по статусу и флаг activeOnly взаимоисключающие
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings for worker=%d, from=%s, to=%s",
		req.WorkerID, req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	if req.WorkerID <= 0 {
		return nil, fmt.Errorf("%w: workerID must be positive", ErrInvalidInput)
	}
	if !req.To.After(req.From) {
		return nil, fmt.Errorf("%w: to must be after from", ErrInvalidTimeRange)
	}
	if req.Status != nil && req.ActiveOnly {
		return nil, fmt.Errorf("%w: status and activeOnly are mutually exclusive", ErrInvalidInput)
	}

	var statuses []domain.BookingStatus
	switch {
	case req.Status != nil:
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status=%s for worker=%d", *req.Status, req.WorkerID)
			return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, *req.Status)
		}
		statuses = []domain.BookingStatus{status}
	case req.ActiveOnly:
		statuses = domain.ActiveBookingStatuses
	}

	bookings, err := s.bookingRepo.ListByWorker(ctx, req.WorkerID, req.From, req.To, statuses)
	if err != nil {
		s.logger.Error("List: repository error for worker=%d: %v", req.WorkerID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings for worker=%d", len(bookings), req.WorkerID)
	return models.FromDomainBookingList(bookings), nil
}
