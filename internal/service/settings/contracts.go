package settings

import "context"

// SettingsRepository интерфейс репозитория настроек приложения
type SettingsRepository interface {
	GetLeadTimeDays(ctx context.Context) (int, error)
	UpdateLeadTimeDays(ctx context.Context, days int) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
