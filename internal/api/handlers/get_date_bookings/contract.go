package get_date_bookings

import (
	"context"

	"github.com/m04kA/SMC-AmenityService/internal/service/bookings/models"
	"github.com/m04kA/SMC-AmenityService/pkg/types"
)

type BookingService interface {
	GetDateBookings(ctx context.Context, date types.DateString, actor models.Actor) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
