package models

import (
	"time"

	"github.com/m04kA/SMC-AmenityService/internal/domain"
	"github.com/m04kA/SMC-AmenityService/pkg/ptr"
)

// Actor инициатор операции; роль доверенная - приходит из заголовков запроса
type Actor struct {
	UserID int64
	Role   domain.Role
}

// IsAdmin возвращает true для администратора
func (a Actor) IsAdmin() bool {
	return a.Role == domain.RoleAdmin
}

// BookingResponse ответ с данными брони
type BookingResponse struct {
	ID         int64  `json:"id"`
	AmenityID  int64  `json:"amenityId"`
	ResidentID int64  `json:"residentId"`
	Date       string `json:"date"` // "2024-06-10"
	Slot       string `json:"slot"` // "08:00 - 09:00"
	Status     string `json:"status"`

	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком броней
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:         b.ID,
		AmenityID:  b.AmenityID,
		ResidentID: b.ResidentID,
		Date:       b.Date.String(),
		Slot:       b.Slot,
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		resp.CancelledAt = ptr.Ptr(b.CancelledAt.Format(time.RFC3339))
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}
