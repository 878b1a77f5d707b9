package residents

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-AmenityService/internal/domain"
	residentRepo "github.com/m04kA/SMC-AmenityService/internal/infra/storage/resident"
	"github.com/m04kA/SMC-AmenityService/internal/service/residents/models"
)

// Service сервис реестра жителей
type Service struct {
	residentRepo ResidentRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса жителей
func NewService(residentRepo ResidentRepository, logger Logger) *Service {
	return &Service{
		residentRepo: residentRepo,
		logger:       logger,
	}
}

// GetByID получает жителя по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ResidentResponse, error) {
	profile, err := s.residentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, residentRepo.ErrResidentNotFound) {
			return nil, ErrResidentNotFound
		}
		s.logger.Error("GetByID: repository error for resident=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainProfile(profile), nil
}

// List возвращает всех жителей реестра
func (s *Service) List(ctx context.Context) (*models.ResidentListResponse, error) {
	profiles, err := s.residentRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainProfileList(profiles), nil
}

// BulkImport разбирает построчный список "имя,юнит,email" и заводит
// жителей одним батчем. Пустые строки и строки без имени пропускаются,
// их количество возвращается в Skipped. Все импортированные получают
// роль RESIDENT
func (s *Service) BulkImport(ctx context.Context, req *models.BulkImportRequest) (*models.BulkImportResponse, error) {
	s.logger.Info("BulkImport: parsing import payload")

	profiles, skipped, err := parseImportLines(req.Lines)
	if err != nil {
		s.logger.Warn("BulkImport: parse failed: %v", err)
		return nil, err
	}
	if len(profiles) == 0 {
		s.logger.Warn("BulkImport: no valid lines in payload, skipped=%d", skipped)
		return nil, ErrEmptyImport
	}

	created, err := s.residentRepo.BulkCreate(ctx, profiles)
	if err != nil {
		s.logger.Error("BulkImport: repository error: %v", err)
		return nil, fmt.Errorf("%w: BulkImport - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("BulkImport: imported %d residents, skipped %d lines", len(created), skipped)

	listResp := models.FromDomainProfileList(created)
	return &models.BulkImportResponse{
		Imported:  len(created),
		Skipped:   skipped,
		Residents: listResp.Residents,
	}, nil
}

func parseImportLines(lines string) ([]*domain.Profile, int, error) {
	var (
		profiles []*domain.Profile
		skipped  int
	)

	for _, line := range strings.Split(lines, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		parts := strings.SplitN(line, ",", 3)
		name := strings.TrimSpace(parts[0])
		if name == "" {
			skipped++
			continue
		}

		var unit, email string
		if len(parts) > 1 {
			unit = strings.TrimSpace(parts[1])
		}
		if len(parts) > 2 {
			email = strings.TrimSpace(parts[2])
		}

		if err := validateProfile(name, unit, email); err != nil {
			return nil, 0, err
		}

		profiles = append(profiles, &domain.Profile{
			Name:  name,
			Unit:  unit,
			Email: email,
			Role:  domain.RoleResident,
		})
	}

	return profiles, skipped, nil
}

func validateProfile(name, unit, email string) error {
	if utf8.RuneCountInString(name) > domain.MaxResidentNameLength {
		return fmt.Errorf("%w: name %q exceeds %d characters", ErrInvalidInput, name, domain.MaxResidentNameLength)
	}
	if utf8.RuneCountInString(unit) > domain.MaxUnitLength {
		return fmt.Errorf("%w: unit %q exceeds %d characters", ErrInvalidInput, unit, domain.MaxUnitLength)
	}
	if utf8.RuneCountInString(email) > domain.MaxEmailLength {
		return fmt.Errorf("%w: email exceeds %d characters", ErrInvalidInput, domain.MaxEmailLength)
	}
	if email != "" && !strings.Contains(email, "@") {
		return fmt.Errorf("%w: email %q is malformed", ErrInvalidInput, email)
	}
	return nil
}
