package domain

// TimeSlots фиксированный упорядоченный каталог часовых слотов с 08:00 до 22:00
// Метки используются как идентификаторы слотов и в БД, и в API - дословно,
// без пересчёта из времени начала/конца
var TimeSlots = []string{
	"08:00 - 09:00", "09:00 - 10:00", "10:00 - 11:00", "11:00 - 12:00",
	"12:00 - 13:00", "13:00 - 14:00", "14:00 - 15:00", "15:00 - 16:00",
	"16:00 - 17:00", "17:00 - 18:00", "18:00 - 19:00", "19:00 - 20:00",
	"20:00 - 21:00", "21:00 - 22:00",
}

// IsValidSlot reports whether label is one of the catalog entries
func IsValidSlot(label string) bool {
	for _, s := range TimeSlots {
		if s == label {
			return true
		}
	}
	return false
}

// SlotAvailability represents one catalog slot and whether it is taken
// for a given (amenity, date) pair
type SlotAvailability struct {
	Slot    string
	IsTaken bool
}
