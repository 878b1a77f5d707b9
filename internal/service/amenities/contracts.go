package amenities

import (
	"context"

	"github.com/m04kA/SMC-AmenityService/internal/domain"
)

// AmenityRepository интерфейс репозитория помещений
type AmenityRepository interface {
	Create(ctx context.Context, amenity *domain.Amenity) (*domain.Amenity, error)
	GetByID(ctx context.Context, id int64) (*domain.Amenity, error)
	List(ctx context.Context) ([]*domain.Amenity, error)
	Update(ctx context.Context, amenity *domain.Amenity) error
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
