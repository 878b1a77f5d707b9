package announcements

import (
	"context"

	"github.com/m04kA/SMC-AmenityService/internal/domain"
)

// AnnouncementRepository интерфейс репозитория объявлений
type AnnouncementRepository interface {
	Create(ctx context.Context, a *domain.Announcement) (*domain.Announcement, error)
	List(ctx context.Context) ([]*domain.Announcement, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
