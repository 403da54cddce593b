package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"event-booking-api/internal/model"
	apperrors "event-booking-api/pkg/app_errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LocationRepository interface {
	EntityStore[model.Location, model.UpdateLocationParams, model.LocationCriteria]
	FindByName(ctx context.Context, name string) (*model.Location, error)
	ListActive(ctx context.Context) ([]*model.Location, error)
}

type LocationRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewLocationRepository(pool *pgxpool.Pool) LocationRepository {
	return &LocationRepositoryImpl{
		pool: pool,
	}
}

const locationColumns = `id, location_id, name, capacity, is_active, deleted, created_at, updated_at`

func scanLocation(row pgx.Row) (*model.Location, error) {
	var location model.Location
	err := row.Scan(
		&location.ID,
		&location.LocationID,
		&location.Name,
		&location.Capacity,
		&location.IsActive,
		&location.Deleted,
		&location.CreatedAt,
		&location.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *LocationRepositoryImpl) queryLocations(ctx context.Context, query string, args ...interface{}) ([]*model.Location, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	locations := make([]*model.Location, 0)
	for rows.Next() {
		location, err := scanLocation(rows)
		if err != nil {
			return nil, err
		}
		locations = append(locations, location)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return locations, nil
}

func (r *LocationRepositoryImpl) Create(ctx context.Context, location *model.Location) (*model.Location, error) {
	query := fmt.Sprintf(`
		INSERT INTO locations (location_id, name, capacity)
		VALUES ($1, $2, $3)
		RETURNING %s
	`, locationColumns)

	created, err := scanLocation(r.pool.QueryRow(ctx, query,
		location.LocationID, location.Name, location.Capacity,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrLocationNameTaken
		}
		return nil, err
	}

	return created, nil
}

func (r *LocationRepositoryImpl) FindAll(ctx context.Context) ([]*model.Location, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM locations
		ORDER BY created_at DESC
	`, locationColumns)

	return r.queryLocations(ctx, query)
}

func (r *LocationRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Location, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM locations
		WHERE id = $1
	`, locationColumns)

	location, err := scanLocation(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrLocationNotFound
		}
		return nil, err
	}

	return location, nil
}

func (r *LocationRepositoryImpl) FindByCriteria(ctx context.Context, criteria model.LocationCriteria) ([]*model.Location, error) {
	wheres := []string{}
	args := []interface{}{}
	argPos := 1

	if criteria.Name != nil {
		wheres = append(wheres, fmt.Sprintf("name = $%d", argPos))
		args = append(args, *criteria.Name)
		argPos++
	}
	if criteria.Capacity != nil {
		wheres = append(wheres, fmt.Sprintf("capacity = $%d", argPos))
		args = append(args, *criteria.Capacity)
		argPos++
	}
	if criteria.IsActive != nil {
		wheres = append(wheres, fmt.Sprintf("is_active = $%d", argPos))
		args = append(args, *criteria.IsActive)
		argPos++
	}
	if criteria.Deleted != nil {
		wheres = append(wheres, fmt.Sprintf("deleted = $%d", argPos))
		args = append(args, *criteria.Deleted)
		argPos++
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM locations
	`, locationColumns)
	if len(wheres) > 0 {
		query += " WHERE " + strings.Join(wheres, " AND ")
	}
	query += " ORDER BY created_at DESC"

	return r.queryLocations(ctx, query, args...)
}

func (r *LocationRepositoryImpl) Update(ctx context.Context, id int, params model.UpdateLocationParams) (*model.Location, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	if params.Name != nil {
		sets = append(sets, fmt.Sprintf("name = $%d", argPos))
		args = append(args, *params.Name)
		argPos++
	}
	if params.Capacity != nil {
		sets = append(sets, fmt.Sprintf("capacity = $%d", argPos))
		args = append(args, *params.Capacity)
		argPos++
	}

	if len(sets) == 0 {
		return nil, apperrors.ErrInvalidInput
	}

	// add updated_at
	sets = append(sets, fmt.Sprintf("updated_at = $%d", argPos))
	args = append(args, time.Now().UTC())
	argPos++

	// add id
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE locations
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), argPos, locationColumns)

	location, err := scanLocation(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrLocationNotFound
		}
		if isUniqueViolation(err) {
			return nil, apperrors.ErrLocationNameTaken
		}
		return nil, err
	}

	return location, nil
}

func (r *LocationRepositoryImpl) SoftDelete(ctx context.Context, id int) error {
	return setFlag(ctx, r.pool, "locations", "deleted", true, id, apperrors.ErrLocationNotFound)
}

func (r *LocationRepositoryImpl) Restore(ctx context.Context, id int) error {
	return setFlag(ctx, r.pool, "locations", "deleted", false, id, apperrors.ErrLocationNotFound)
}

func (r *LocationRepositoryImpl) Activate(ctx context.Context, id int) error {
	return setFlag(ctx, r.pool, "locations", "is_active", true, id, apperrors.ErrLocationNotFound)
}

func (r *LocationRepositoryImpl) Deactivate(ctx context.Context, id int) error {
	return setFlag(ctx, r.pool, "locations", "is_active", false, id, apperrors.ErrLocationNotFound)
}

func (r *LocationRepositoryImpl) Delete(ctx context.Context, id int) error {
	return hardDelete(ctx, r.pool, "locations", id, apperrors.ErrLocationNotFound)
}

func (r *LocationRepositoryImpl) Count(ctx context.Context, criteria model.LocationCriteria) (int, error) {
	wheres := []string{}
	args := []interface{}{}
	argPos := 1

	if criteria.Name != nil {
		wheres = append(wheres, fmt.Sprintf("name = $%d", argPos))
		args = append(args, *criteria.Name)
		argPos++
	}
	if criteria.Capacity != nil {
		wheres = append(wheres, fmt.Sprintf("capacity = $%d", argPos))
		args = append(args, *criteria.Capacity)
		argPos++
	}
	if criteria.IsActive != nil {
		wheres = append(wheres, fmt.Sprintf("is_active = $%d", argPos))
		args = append(args, *criteria.IsActive)
		argPos++
	}
	if criteria.Deleted != nil {
		wheres = append(wheres, fmt.Sprintf("deleted = $%d", argPos))
		args = append(args, *criteria.Deleted)
		argPos++
	}

	query := `SELECT COUNT(*) FROM locations`
	if len(wheres) > 0 {
		query += " WHERE " + strings.Join(wheres, " AND ")
	}

	var count int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func (r *LocationRepositoryImpl) GetPaginated(ctx context.Context, limit, offset int) ([]*model.Location, error) {
	if limit < 1 || offset < 0 {
		return nil, apperrors.ErrInvalidPagination
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM locations
		WHERE deleted = FALSE
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, locationColumns)

	return r.queryLocations(ctx, query, limit, offset)
}

func (r *LocationRepositoryImpl) FindByName(ctx context.Context, name string) (*model.Location, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM locations
		WHERE name = $1
	`, locationColumns)

	location, err := scanLocation(r.pool.QueryRow(ctx, query, name))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrLocationNotFound
		}
		return nil, err
	}

	return location, nil
}

func (r *LocationRepositoryImpl) ListActive(ctx context.Context) ([]*model.Location, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM locations
		WHERE is_active = TRUE AND deleted = FALSE
		ORDER BY created_at DESC
	`, locationColumns)

	return r.queryLocations(ctx, query)
}
