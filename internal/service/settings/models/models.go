package models

// UpdateSettingsRequest запрос на изменение настроек приложения
type UpdateSettingsRequest struct {
	BookingLeadTimeDays int `json:"bookingLeadTimeDays"`
}

// SettingsResponse текущие настройки приложения
type SettingsResponse struct {
	BookingLeadTimeDays int `json:"bookingLeadTimeDays"`
}
