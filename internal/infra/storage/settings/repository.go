package settings

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AmenityService/internal/domain"
	"github.com/m04kA/SMC-AmenityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AmenityService/pkg/psqlbuilder"
)

// Настройки хранятся одной строкой с фиксированным id
const settingsRowID = 1

// Repository репозиторий настроек бронирования
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetLeadTimeDays читает текущее минимальное количество дней предварительного
// бронирования; если строка настроек отсутствует, возвращает значение по умолчанию
func (r *Repository) GetLeadTimeDays(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("lead_time_days").
		From("app_settings").
		Where(squirrel.Eq{"id": settingsRowID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: GetLeadTimeDays - build select query: %v", ErrBuildQuery, err)
	}

	var days int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&days)
	if err == sql.ErrNoRows {
		return domain.DefaultLeadTimeDays, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: GetLeadTimeDays - scan value: %v", ErrScanRow, err)
	}

	return days, nil
}

// UpdateLeadTimeDays сохраняет новое значение lead time (upsert единственной строки)
func (r *Repository) UpdateLeadTimeDays(ctx context.Context, days int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildUpsertLeadTimeQuery(days)
	if err != nil {
		return fmt.Errorf("%w: UpdateLeadTimeDays - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpdateLeadTimeDays - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// Запрос трогает только колонки, которые есть в таблице app_settings:
// id и lead_time_days
func buildUpsertLeadTimeQuery(days int) (string, []interface{}, error) {
	return psqlbuilder.Insert("app_settings").
		Columns("id", "lead_time_days").
		Values(settingsRowID, days).
		Suffix("ON CONFLICT (id) DO UPDATE SET lead_time_days = EXCLUDED.lead_time_days").
		ToSql()
}
