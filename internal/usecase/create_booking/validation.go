package create_booking

import (
	"fmt"

	"github.com/m04kA/SMC-AmenityService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.AmenityID <= 0 {
		return fmt.Errorf("%w: amenityID must be positive", ErrInvalidInput)
	}

	if req.ResidentID <= 0 {
		return fmt.Errorf("%w: residentID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.Date.Validate(); err != nil {
		return fmt.Errorf("%w: invalid date format: %v", ErrInvalidInput, err)
	}

	if !domain.IsValidSlot(req.Slot) {
		return ErrInvalidSlot
	}

	return nil
}

// isSlotTaken проверяет, занят ли слот одной из подтверждённых броней дня
func isSlotTaken(bookings []*domain.Booking, slot string) bool {
	for _, b := range bookings {
		if b.Slot == slot && b.IsConfirmed() {
			return true
		}
	}
	return false
}
