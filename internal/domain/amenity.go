package domain

import "time"

// Amenity represents a shared facility residents can book (gym, pool, lounge)
type Amenity struct {
	ID       int64
	Name     string
	Icon     string // Глиф для отображения в UI, например "🏋️"
	Capacity int    // Информационное поле: слот всегда single-occupancy независимо от capacity

	CreatedAt time.Time
	UpdatedAt time.Time
}
