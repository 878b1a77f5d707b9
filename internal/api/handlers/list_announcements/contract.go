package list_announcements

import (
	"context"

	"github.com/m04kA/SMC-AmenityService/internal/service/announcements/models"
)

type AnnouncementService interface {
	List(ctx context.Context) (*models.AnnouncementListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
