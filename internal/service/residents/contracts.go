package residents

import (
	"context"

	"github.com/m04kA/SMC-AmenityService/internal/domain"
)

// ResidentRepository интерфейс репозитория жителей
type ResidentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Profile, error)
	List(ctx context.Context) ([]*domain.Profile, error)
	BulkCreate(ctx context.Context, profiles []*domain.Profile) ([]*domain.Profile, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
