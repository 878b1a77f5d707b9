package announcements

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-AmenityService/internal/domain"
	"github.com/m04kA/SMC-AmenityService/internal/service/announcements/models"
)

// Service сервис ленты объявлений администрации
// Лента append-only: объявления не редактируются и не удаляются
type Service struct {
	announcementRepo AnnouncementRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса объявлений
func NewService(announcementRepo AnnouncementRepository, logger Logger) *Service {
	return &Service{
		announcementRepo: announcementRepo,
		logger:           logger,
	}
}

// List возвращает ленту объявлений, свежие первыми; публичная операция
func (s *Service) List(ctx context.Context) (*models.AnnouncementListResponse, error) {
	announcements, err := s.announcementRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAnnouncementList(announcements), nil
}

// Create публикует объявление от имени администратора authorID
func (s *Service) Create(ctx context.Context, authorID int64, req *models.CreateAnnouncementRequest) (*models.AnnouncementResponse, error) {
	s.logger.Info("Create: publishing announcement by author=%d", authorID)

	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)

	if err := validateAnnouncement(title, content); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.announcementRepo.Create(ctx, &domain.Announcement{
		Title:    title,
		Content:  content,
		AuthorID: authorID,
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: announcement id=%d published", created.ID)
	return models.FromDomainAnnouncement(created), nil
}

func validateAnnouncement(title, content string) error {
	if title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(title) > domain.MaxAnnouncementTitleLength {
		return fmt.Errorf("%w: title exceeds %d characters", ErrInvalidInput, domain.MaxAnnouncementTitleLength)
	}
	if content == "" {
		return fmt.Errorf("%w: content is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(content) > domain.MaxAnnouncementContentLength {
		return fmt.Errorf("%w: content exceeds %d characters", ErrInvalidInput, domain.MaxAnnouncementContentLength)
	}
	return nil
}
