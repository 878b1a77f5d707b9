package create_booking

import (
	"time"

	createBooking "github.com/m04kA/SMC-AmenityService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-AmenityService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	AmenityID  int64  `json:"amenityId"`
	Date       string `json:"date"` // "2025-06-15"
	Slot       string `json:"slot"` // "08:00 - 09:00"
	ResidentID *int64 `json:"residentId,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID         int64  `json:"id"`
	AmenityID  int64  `json:"amenityId"`
	ResidentID int64  `json:"residentId"`
	Date       string `json:"date"`
	Slot       string `json:"slot"`
	Status     string `json:"status"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(residentID int64) (*createBooking.Request, error) {
	date, err := types.NewDateStringFromString(r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		AmenityID:  r.AmenityID,
		ResidentID: residentID,
		Date:       date,
		Slot:       r.Slot,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:         resp.ID,
		AmenityID:  resp.AmenityID,
		ResidentID: resp.ResidentID,
		Date:       resp.Date.String(),
		Slot:       resp.Slot,
		Status:     resp.Status,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}
