package get_available_slots

import (
	"github.com/m04kA/SMC-AmenityService/pkg/types"
)

// Request модель запроса на получение статуса слотов
type Request struct {
	AmenityID int64            // ID amenity
	Date      types.DateString // Дата (YYYY-MM-DD)
}

// Response модель ответа со статусом всех слотов каталога
type Response struct {
	AmenityID int64
	Date      types.DateString

	// MinBookableDate минимальная дата, доступная для новых броней по
	// текущей настройке lead time; календарь на стороне клиента обязан
	// отключать выбор более ранних дат
	MinBookableDate types.DateString

	// Slots все 14 слотов каталога в каталожном порядке
	Slots []Slot
}

// Slot статус одного слота каталога
type Slot struct {
	Slot    string // Метка слота, например "08:00 - 09:00"
	IsTaken bool   // true, если на слот есть подтверждённая бронь
}
