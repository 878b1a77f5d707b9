package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AmenityService/internal/domain"
	"github.com/m04kA/SMC-AmenityService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetConfirmedForDay(ctx context.Context, amenityID int64, date types.DateString) ([]*domain.Booking, error)
}

// AmenityRepository интерфейс справочника amenities
type AmenityRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Amenity, error)
}

// ResidentRepository интерфейс реестра резидентов
type ResidentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Profile, error)
}

// SettingsRepository интерфейс хранилища настроек бронирования
type SettingsRepository interface {
	GetLeadTimeDays(ctx context.Context) (int, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
