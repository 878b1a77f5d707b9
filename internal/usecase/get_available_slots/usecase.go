package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AmenityService/internal/domain"
	amenityRepo "github.com/m04kA/SMC-AmenityService/internal/infra/storage/amenity"
)

// UseCase use case для получения статуса слотов amenity на дату
type UseCase struct {
	bookingRepo  BookingRepository
	amenityRepo  AmenityRepository
	settingsRepo SettingsRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	amenityRepo AmenityRepository,
	settingsRepo SettingsRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		amenityRepo:  amenityRepo,
		settingsRepo: settingsRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения статуса слотов
// Прошедшие даты здесь не отклоняются: отказ от выбора даты раньше
// MinBookableDate - обязанность календаря на стороне клиента
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: amenity=%d, date=%s", req.AmenityID, req.Date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование amenity
	if _, err := uc.amenityRepo.GetByID(ctx, req.AmenityID); err != nil {
		if errors.Is(err, amenityRepo.ErrAmenityNotFound) {
			uc.logger.Warn("GetAvailableSlots: amenity id=%d not found", req.AmenityID)
			return nil, ErrAmenityNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get amenity id=%d: %v", req.AmenityID, err)
		return nil, fmt.Errorf("%w: failed to get amenity: %v", ErrInternal, err)
	}

	// 3. Читаем настройку lead time для подсказки календарю
	leadTimeDays, err := uc.settingsRepo.GetLeadTimeDays(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get lead time setting: %v", err)
		return nil, fmt.Errorf("%w: failed to get lead time setting: %v", ErrInternal, err)
	}

	// 4. Сканируем подтверждённые брони дня и строим производное представление
	dayBookings, err := uc.bookingRepo.GetConfirmedForDay(ctx, req.AmenityID, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings for day: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings for day: %v", ErrInternal, err)
	}

	return &Response{
		AmenityID:       req.AmenityID,
		Date:            req.Date,
		MinBookableDate: domain.MinBookableDate(uc.timeProvider.Now(), leadTimeDays),
		Slots:           buildSlotStatuses(dayBookings),
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.AmenityID <= 0 {
		return fmt.Errorf("%w: amenityID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.Date.Validate(); err != nil {
		return fmt.Errorf("%w: invalid date format: %v", ErrInvalidInput, err)
	}

	return nil
}
