package get_resident_bookings

import (
	"context"

	"github.com/m04kA/SMC-AmenityService/internal/service/bookings/models"
)

type BookingService interface {
	GetResidentBookings(ctx context.Context, residentID int64, actor models.Actor) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
