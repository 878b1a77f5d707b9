package amenity

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AmenityService/internal/domain"
	"github.com/m04kA/SMC-AmenityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AmenityService/pkg/psqlbuilder"
)

// Repository репозиторий справочника amenities
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория amenities
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый amenity
func (r *Repository) Create(ctx context.Context, amenity *domain.Amenity) (*domain.Amenity, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("amenities").
		Columns("name", "icon", "capacity").
		Values(amenity.Name, amenity.Icon, amenity.Capacity).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&amenity.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	amenity.CreatedAt = createdAt.Time
	amenity.UpdatedAt = updatedAt.Time

	return amenity, nil
}

// GetByID получает amenity по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Amenity, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "icon", "capacity", "created_at", "updated_at").
		From("amenities").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var amenity domain.Amenity
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&amenity.ID,
		&amenity.Name,
		&amenity.Icon,
		&amenity.Capacity,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAmenityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan amenity: %v", ErrScanRow, err)
	}

	amenity.CreatedAt = createdAt.Time
	amenity.UpdatedAt = updatedAt.Time

	return &amenity, nil
}

// List получает все amenities в порядке создания
func (r *Repository) List(ctx context.Context) ([]*domain.Amenity, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "icon", "capacity", "created_at", "updated_at").
		From("amenities").
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

	amenities := make([]*domain.Amenity, 0)
	for rows.Next() {
		var amenity domain.Amenity
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&amenity.ID,
			&amenity.Name,
			&amenity.Icon,
			&amenity.Capacity,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		amenity.CreatedAt = createdAt.Time
		amenity.UpdatedAt = updatedAt.Time
		amenities = append(amenities, &amenity)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return amenities, nil
}

// Update обновляет имя, иконку и вместимость amenity
func (r *Repository) Update(ctx context.Context, amenity *domain.Amenity) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("amenities").
		Set("name", amenity.Name).
		Set("icon", amenity.Icon).
		Set("capacity", amenity.Capacity).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": amenity.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAmenityNotFound
	}

	return nil
}

// Delete удаляет amenity из справочника
// Брони, ссылающиеся на удалённый amenity, остаются в реестре как история
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("amenities").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAmenityNotFound
	}

	return nil
}
