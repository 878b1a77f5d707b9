package create_amenity

import (
	"context"

	"github.com/m04kA/SMC-AmenityService/internal/service/amenities/models"
)

type AmenityService interface {
	Create(ctx context.Context, req *models.CreateAmenityRequest) (*models.AmenityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
