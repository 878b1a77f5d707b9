package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AmenityService/internal/domain"
	amenityRepo "github.com/m04kA/SMC-AmenityService/internal/infra/storage/amenity"
	bookingRepo "github.com/m04kA/SMC-AmenityService/internal/infra/storage/booking"
	residentRepo "github.com/m04kA/SMC-AmenityService/internal/infra/storage/resident"
)

// UseCase use case для создания брони amenity
type UseCase struct {
	bookingRepo  BookingRepository
	amenityRepo  AmenityRepository
	residentRepo ResidentRepository
	settingsRepo SettingsRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	amenityRepo AmenityRepository,
	residentRepo ResidentRepository,
	settingsRepo SettingsRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		amenityRepo:  amenityRepo,
		residentRepo: residentRepo,
		settingsRepo: settingsRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания брони
// Проверка "слот свободен" и вставка выполняются в одной сериализуемой
// транзакции: из двух конкурирующих запросов на один (amenity, date, slot)
// ровно один выигрывает, второй получает ErrSlotNotAvailable
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: amenity=%d, resident=%d, date=%s, slot=%q",
		req.AmenityID, req.ResidentID, req.Date, req.Slot)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Проверяем существование amenity
	if _, err := uc.amenityRepo.GetByID(ctx, req.AmenityID); err != nil {
		if errors.Is(err, amenityRepo.ErrAmenityNotFound) {
			uc.logger.Warn("CreateBooking: amenity id=%d not found", req.AmenityID)
			return nil, ErrAmenityNotFound
		}
		uc.logger.Error("CreateBooking: failed to get amenity id=%d: %v", req.AmenityID, err)
		return nil, fmt.Errorf("%w: failed to get amenity: %v", ErrInternal, err)
	}

	// 3. Проверяем существование резидента
	if _, err := uc.residentRepo.GetByID(ctx, req.ResidentID); err != nil {
		if errors.Is(err, residentRepo.ErrResidentNotFound) {
			uc.logger.Warn("CreateBooking: resident id=%d not found", req.ResidentID)
			return nil, ErrResidentNotFound
		}
		uc.logger.Error("CreateBooking: failed to get resident id=%d: %v", req.ResidentID, err)
		return nil, fmt.Errorf("%w: failed to get resident: %v", ErrInternal, err)
	}

	// 4. Проверяем lead time: дата не раньше минимально допустимой
	// Настройка читается заново на каждый запрос, не кэшируется
	leadTimeDays, err := uc.settingsRepo.GetLeadTimeDays(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get lead time setting: %v", err)
		return nil, fmt.Errorf("%w: failed to get lead time setting: %v", ErrInternal, err)
	}

	minDate := domain.MinBookableDate(now, leadTimeDays)
	if req.Date.Before(minDate) {
		uc.logger.Warn("CreateBooking: date %s is earlier than minimum bookable date %s (lead time %d days)",
			req.Date, minDate, leadTimeDays)
		return nil, fmt.Errorf("%w: earliest bookable date is %s", ErrDateTooEarly, minDate)
	}

	var result *domain.Booking

	// 5. Атомарный check-then-insert в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Перечитываем подтверждённые брони дня с блокировкой (FOR UPDATE)
		dayBookings, err := uc.bookingRepo.GetConfirmedForDay(txCtx, req.AmenityID, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings for day: %v", err)
			return fmt.Errorf("%w: failed to get bookings for day: %v", ErrInternal, err)
		}

		// 5.2. Авторитетная проверка конфликта
		// UI уже отключает занятые слоты, но между рендером и сабмитом
		// другая бронь могла успеть - здесь решается, кто выиграл
		if isSlotTaken(dayBookings, req.Slot) {
			uc.logger.Warn("CreateBooking: slot %q already taken for amenity=%d date=%s",
				req.Slot, req.AmenityID, req.Date)
			return ErrSlotNotAvailable
		}

		// 5.3. Вставляем бронь со статусом confirmed
		booking := &domain.Booking{
			AmenityID:  req.AmenityID,
			ResidentID: req.ResidentID,
			Date:       req.Date,
			Slot:       req.Slot,
			Status:     domain.StatusConfirmed,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Уникальный индекс БД - последняя линия защиты от гонки
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:         result.ID,
		AmenityID:  result.AmenityID,
		ResidentID: result.ResidentID,
		Date:       result.Date,
		Slot:       result.Slot,
		Status:     string(result.Status),
		CreatedAt:  result.CreatedAt,
		UpdatedAt:  result.UpdatedAt,
	}, nil
}
