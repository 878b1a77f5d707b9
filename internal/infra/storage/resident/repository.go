package resident

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AmenityService/internal/domain"
	"github.com/m04kA/SMC-AmenityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AmenityService/pkg/psqlbuilder"
)

// Repository репозиторий реестра резидентов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория резидентов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает профиль по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Profile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "unit", "email", "role", "created_at").
		From("residents").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var profile domain.Profile
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&profile.ID,
		&profile.Name,
		&profile.Unit,
		&profile.Email,
		&profile.Role,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrResidentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan profile: %v", ErrScanRow, err)
	}

	profile.CreatedAt = createdAt.Time

	return &profile, nil
}

// List получает все профили в порядке создания
func (r *Repository) List(ctx context.Context) ([]*domain.Profile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "unit", "email", "role", "created_at").
		From("residents").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	profiles := make([]*domain.Profile, 0)
	for rows.Next() {
		var profile domain.Profile
		var createdAt sql.NullTime

		err := rows.Scan(&profile.ID, &profile.Name, &profile.Unit, &profile.Email, &profile.Role, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		profile.CreatedAt = createdAt.Time
		profiles = append(profiles, &profile)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return profiles, nil
}

// BulkCreate создает пачку профилей одним INSERT
// Используется массовым импортом резидентов администратором
func (r *Repository) BulkCreate(ctx context.Context, profiles []*domain.Profile) ([]*domain.Profile, error) {
	if len(profiles) == 0 {
		return []*domain.Profile{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("residents").
		Columns("name", "unit", "email", "role")

	for _, p := range profiles {
		insertBuilder = insertBuilder.Values(p.Name, p.Unit, p.Email, p.Role)
	}

	query, args, err := insertBuilder.
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: BulkCreate - build insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: BulkCreate - execute insert: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	// RETURNING возвращает строки в порядке VALUES
	i := 0
	for rows.Next() {
		if i >= len(profiles) {
			break
		}
		var createdAt sql.NullTime
		if err := rows.Scan(&profiles[i].ID, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: BulkCreate - scan row: %v", ErrScanRow, err)
		}
		profiles[i].CreatedAt = createdAt.Time
		i++
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: BulkCreate - rows error: %v", ErrScanRow, err)
	}

	return profiles, nil
}
