package domain

import (
	"time"

	"github.com/m04kA/SMC-AmenityService/pkg/types"
)

// BookingStatus represents the status of an amenity booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a reservation of an amenity time slot
// Записи никогда не удаляются физически - отменённые брони остаются в истории
type Booking struct {
	ID         int64
	AmenityID  int64
	ResidentID int64
	Date       types.DateString // Календарная дата брони (YYYY-MM-DD)
	Slot       string           // Метка слота из фиксированного каталога, например "08:00 - 09:00"
	Status     BookingStatus

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsConfirmed returns true if the booking currently occupies its slot
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsPast returns true if the booking date is strictly before today
// "Сегодня" определяется датой переданного момента now
func (b *Booking) IsPast(now time.Time) bool {
	return b.Date.Before(types.NewDateString(now))
}

// ValidStatus reports whether s is one of the known booking statuses
func ValidStatus(s BookingStatus) bool {
	return s == StatusConfirmed || s == StatusCancelled
}
