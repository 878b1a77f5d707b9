package list_amenities

import (
	"context"

	"github.com/m04kA/SMC-AmenityService/internal/service/amenities/models"
)

type AmenityService interface {
	List(ctx context.Context) (*models.AmenityListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
