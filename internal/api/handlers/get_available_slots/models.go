package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/SMC-AmenityService/internal/usecase/get_available_slots"
)

// SlotStatus HTTP модель статуса одного слота
type SlotStatus struct {
	Slot    string `json:"slot"` // "08:00 - 09:00"
	IsTaken bool   `json:"isTaken"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	AmenityID       int64        `json:"amenityId"`
	Date            string       `json:"date"`
	MinBookableDate string       `json:"minBookableDate"`
	Slots           []SlotStatus `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotStatus, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotStatus{Slot: s.Slot, IsTaken: s.IsTaken})
	}

	return &AvailableSlotsResponse{
		AmenityID:       resp.AmenityID,
		Date:            resp.Date.String(),
		MinBookableDate: resp.MinBookableDate.String(),
		Slots:           slots,
	}
}
