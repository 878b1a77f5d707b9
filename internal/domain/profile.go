package domain

import "time"

// Role тег роли пользователя; роль доверенная - приходит из заголовка запроса
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleResident Role = "RESIDENT"
)

// ValidRole reports whether r is one of the known roles
func ValidRole(r Role) bool {
	return r == RoleAdmin || r == RoleResident
}

// Profile represents a resident or administrator of the building
type Profile struct {
	ID    int64
	Name  string
	Unit  string // Номер квартиры/юнита, например "402-B"
	Email string
	Role  Role

	CreatedAt time.Time
}
