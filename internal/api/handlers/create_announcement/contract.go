package create_announcement

import (
	"context"

	"github.com/m04kA/SMC-AmenityService/internal/service/announcements/models"
)

type AnnouncementService interface {
	Create(ctx context.Context, authorID int64, req *models.CreateAnnouncementRequest) (*models.AnnouncementResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
