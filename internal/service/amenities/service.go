package amenities

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-AmenityService/internal/domain"
	amenityRepo "github.com/m04kA/SMC-AmenityService/internal/infra/storage/amenity"
	"github.com/m04kA/SMC-AmenityService/internal/service/amenities/models"
)

// Service сервис управления каталогом помещений
type Service struct {
	amenityRepo AmenityRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса помещений
func NewService(amenityRepo AmenityRepository, logger Logger) *Service {
	return &Service{
		amenityRepo: amenityRepo,
		logger:      logger,
	}
}

// List возвращает каталог помещений; публичная операция
func (s *Service) List(ctx context.Context) (*models.AmenityListResponse, error) {
	amenities, err := s.amenityRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAmenityList(amenities), nil
}

// Create добавляет помещение в каталог
func (s *Service) Create(ctx context.Context, req *models.CreateAmenityRequest) (*models.AmenityResponse, error) {
	s.logger.Info("Create: creating amenity name=%q", req.Name)

	amenity := &domain.Amenity{
		Name:     strings.TrimSpace(req.Name),
		Icon:     req.Icon,
		Capacity: req.Capacity,
	}
	if amenity.Capacity == 0 {
		amenity.Capacity = domain.MinAmenityCapacity
	}

	if err := validateAmenity(amenity.Name, amenity.Icon, amenity.Capacity); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.amenityRepo.Create(ctx, amenity)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: amenity id=%d created", created.ID)
	return models.FromDomainAmenity(created), nil
}

// Update частично обновляет помещение
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateAmenityRequest) (*models.AmenityResponse, error) {
	s.logger.Info("Update: updating amenity id=%d", id)

	amenity, err := s.amenityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, amenityRepo.ErrAmenityNotFound) {
			s.logger.Warn("Update: amenity id=%d not found", id)
			return nil, ErrAmenityNotFound
		}
		s.logger.Error("Update: repository error for amenity id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if req.Name != nil {
		amenity.Name = strings.TrimSpace(*req.Name)
	}
	if req.Icon != nil {
		amenity.Icon = *req.Icon
	}
	if req.Capacity != nil {
		amenity.Capacity = *req.Capacity
	}

	if err := validateAmenity(amenity.Name, amenity.Icon, amenity.Capacity); err != nil {
		s.logger.Warn("Update: validation failed for amenity id=%d: %v", id, err)
		return nil, err
	}

	if err := s.amenityRepo.Update(ctx, amenity); err != nil {
		if errors.Is(err, amenityRepo.ErrAmenityNotFound) {
			return nil, ErrAmenityNotFound
		}
		s.logger.Error("Update: repository error for amenity id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: amenity id=%d updated", id)
	return models.FromDomainAmenity(amenity), nil
}

// Delete удаляет помещение из каталога
// Существующие брони на помещение остаются в журнале как исторические записи
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting amenity id=%d", id)

	if err := s.amenityRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, amenityRepo.ErrAmenityNotFound) {
			s.logger.Warn("Delete: amenity id=%d not found", id)
			return ErrAmenityNotFound
		}
		s.logger.Error("Delete: repository error for amenity id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: amenity id=%d deleted", id)
	return nil
}

func validateAmenity(name, icon string, capacity int) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > domain.MaxAmenityNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidInput, domain.MaxAmenityNameLength)
	}
	if utf8.RuneCountInString(icon) > domain.MaxIconLength {
		return fmt.Errorf("%w: icon exceeds %d characters", ErrInvalidInput, domain.MaxIconLength)
	}
	if capacity < domain.MinAmenityCapacity || capacity > domain.MaxAmenityCapacity {
		return fmt.Errorf("%w: capacity must be between %d and %d", ErrInvalidInput, domain.MinAmenityCapacity, domain.MaxAmenityCapacity)
	}
	return nil
}
