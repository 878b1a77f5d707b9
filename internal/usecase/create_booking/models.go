package create_booking

import (
	"time"

	"github.com/m04kA/SMC-AmenityService/pkg/types"
)

// Request модель запроса на создание брони
type Request struct {
	AmenityID  int64            // ID amenity
	ResidentID int64            // ID резидента
	Date       types.DateString // Дата брони (YYYY-MM-DD)
	Slot       string           // Метка слота из каталога, например "08:00 - 09:00"
}

// Response модель ответа с созданной бронью
type Response struct {
	ID         int64
	AmenityID  int64
	ResidentID int64
	Date       types.DateString
	Slot       string
	Status     string

	CreatedAt time.Time
	UpdatedAt time.Time
}
