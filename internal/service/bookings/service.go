package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/m04kA/SMC-AmenityService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-AmenityService/internal/service/bookings/models"
	"github.com/m04kA/SMC-AmenityService/pkg/types"
)

// Service сервис чтения и отмены броней
type Service struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса броней
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронь по ID
// Резидент видит только свои брони; администратор - любые
func (s *Service) GetByID(ctx context.Context, id int64, actor models.Actor) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, actor.UserID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !actor.IsAdmin() && booking.ResidentID != actor.UserID {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", actor.UserID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetResidentBookings получает все брони резидента (любой статус),
// сначала созданные последними
// Резидент видит только свою историю; администратор - любую
func (s *Service) GetResidentBookings(ctx context.Context, residentID int64, actor models.Actor) (*models.BookingListResponse, error) {
	s.logger.Info("GetResidentBookings: fetching bookings for resident=%d, requested by user=%d", residentID, actor.UserID)

	if !actor.IsAdmin() && residentID != actor.UserID {
		s.logger.Warn("GetResidentBookings: access denied for user=%d to resident=%d history", actor.UserID, residentID)
		return nil, ErrAccessDenied
	}

	bookings, err := s.bookingRepo.GetByResidentID(ctx, residentID)
	if err != nil {
		s.logger.Error("GetResidentBookings: repository error for resident=%d: %v", residentID, err)
		return nil, fmt.Errorf("%w: GetResidentBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetResidentBookings: fetched %d bookings for resident=%d", len(bookings), residentID)
	return models.FromDomainBookingList(bookings), nil
}

// GetDateBookings получает все брони на дату в порядке вставки
// Доступно только администратору (административный обзор дня)
func (s *Service) GetDateBookings(ctx context.Context, date types.DateString, actor models.Actor) (*models.BookingListResponse, error) {
	s.logger.Info("GetDateBookings: fetching bookings for date=%s, requested by user=%d", date, actor.UserID)

	if !actor.IsAdmin() {
		s.logger.Warn("GetDateBookings: access denied for user=%d", actor.UserID)
		return nil, ErrAccessDenied
	}

	if err := date.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.GetByDate(ctx, date)
	if err != nil {
		s.logger.Error("GetDateBookings: repository error for date=%s: %v", date, err)
		return nil, fmt.Errorf("%w: GetDateBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetDateBookings: fetched %d bookings for date=%s", len(bookings), date)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронь
// Резидент может отменить только свою бронь и только если её дата не прошла;
// администратор - любую без ограничения по дате.
// Отмена уже отменённой брони допустима и просто подтверждает статус cancelled -
// операцию безопасно повторять
func (s *Service) Cancel(ctx context.Context, bookingID int64, actor models.Actor) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d (role=%s)", bookingID, actor.UserID, actor.Role)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !actor.IsAdmin() {
		if booking.ResidentID != actor.UserID {
			s.logger.Warn("Cancel: access denied for user=%d to booking id=%d", actor.UserID, bookingID)
			return nil, ErrAccessDenied
		}
		if booking.IsPast(s.timeProvider.Now()) {
			s.logger.Warn("Cancel: booking id=%d date %s already passed", bookingID, booking.Date)
			return nil, ErrCannotCancelPast
		}
	}

	cancelled, err := s.bookingRepo.Cancel(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: failed to cancel booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: booking id=%d cancelled", bookingID)
	return models.FromDomainBooking(cancelled), nil
}
