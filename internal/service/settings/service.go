package settings

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-AmenityService/internal/domain"
	"github.com/m04kA/SMC-AmenityService/internal/service/settings/models"
)

// Service сервис настроек приложения
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Get возвращает текущие настройки
func (s *Service) Get(ctx context.Context) (*models.SettingsResponse, error) {
	days, err := s.settingsRepo.GetLeadTimeDays(ctx)
	if err != nil {
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return &models.SettingsResponse{BookingLeadTimeDays: days}, nil
}

// Update изменяет срок предварительного бронирования
// Новое значение влияет только на последующие создания броней,
// уже существующие брони не пересматриваются
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: setting booking lead time to %d days", req.BookingLeadTimeDays)

	if req.BookingLeadTimeDays < domain.MinLeadTimeDays || req.BookingLeadTimeDays > domain.MaxLeadTimeDays {
		s.logger.Warn("Update: lead time %d out of range", req.BookingLeadTimeDays)
		return nil, fmt.Errorf("%w: must be between %d and %d days", ErrInvalidLeadTime, domain.MinLeadTimeDays, domain.MaxLeadTimeDays)
	}

	if err := s.settingsRepo.UpdateLeadTimeDays(ctx, req.BookingLeadTimeDays); err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: booking lead time set to %d days", req.BookingLeadTimeDays)
	return &models.SettingsResponse{BookingLeadTimeDays: req.BookingLeadTimeDays}, nil
}
