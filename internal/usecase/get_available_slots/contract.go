package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AmenityService/internal/domain"
	"github.com/m04kA/SMC-AmenityService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetConfirmedForDay(ctx context.Context, amenityID int64, date types.DateString) ([]*domain.Booking, error)
}

// AmenityRepository интерфейс справочника amenities
type AmenityRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Amenity, error)
}

// SettingsRepository интерфейс хранилища настроек бронирования
type SettingsRepository interface {
	GetLeadTimeDays(ctx context.Context) (int, error)
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
