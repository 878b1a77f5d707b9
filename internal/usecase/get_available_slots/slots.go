package get_available_slots

import (
	"github.com/m04kA/SMC-AmenityService/internal/domain"
)

// buildSlotStatuses строит статус всех слотов каталога по подтверждённым
// броням дня. Слот занят, если среди броней есть подтверждённая с той же меткой.
// Результат - производное представление: вычисляется заново на каждый запрос
// и никогда не материализуется, поэтому не может разойтись с реестром
func buildSlotStatuses(dayBookings []*domain.Booking) []Slot {
	taken := make(map[string]bool, len(dayBookings))
	for _, b := range dayBookings {
		if b.IsConfirmed() {
			taken[b.Slot] = true
		}
	}

	slots := make([]Slot, len(domain.TimeSlots))
	for i, label := range domain.TimeSlots {
		slots[i] = Slot{
			Slot:    label,
			IsTaken: taken[label],
		}
	}
	return slots
}
