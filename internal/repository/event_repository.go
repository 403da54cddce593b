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

type EventRepository interface {
	EntityStore[model.Event, model.UpdateEventParams, model.EventCriteria]
	FindByName(ctx context.Context, name string) (*model.Event, error)
	ListActive(ctx context.Context) ([]*model.Event, error)
	ListByStartDate(ctx context.Context, date time.Time) ([]*model.Event, error)
	ListBySaleStart(ctx context.Context, date time.Time) ([]*model.Event, error)
}

type EventRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &EventRepositoryImpl{
		pool: pool,
	}
}

const eventColumns = `id, event_id, name, description, start_date, end_date,
	sale_start, sale_end, is_active, deleted, created_at, updated_at`

func scanEvent(row pgx.Row) (*model.Event, error) {
	var event model.Event
	err := row.Scan(
		&event.ID,
		&event.EventID,
		&event.Name,
		&event.Description,
		&event.StartDate,
		&event.EndDate,
		&event.SaleStart,
		&event.SaleEnd,
		&event.IsActive,
		&event.Deleted,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepositoryImpl) queryEvents(ctx context.Context, query string, args ...interface{}) ([]*model.Event, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*model.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

func (r *EventRepositoryImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	query := fmt.Sprintf(`
		INSERT INTO events (event_id, name, description, start_date, end_date, sale_start, sale_end)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s
	`, eventColumns)

	created, err := scanEvent(r.pool.QueryRow(ctx, query,
		event.EventID, event.Name, event.Description,
		event.StartDate, event.EndDate, event.SaleStart, event.SaleEnd,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrEventNameTaken
		}
		return nil, err
	}

	return created, nil
}

// FindAll returns every row, deleted ones included. Administrative listing.
func (r *EventRepositoryImpl) FindAll(ctx context.Context) ([]*model.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		ORDER BY created_at DESC
	`, eventColumns)

	return r.queryEvents(ctx, query)
}

// FindByID retrieves a row regardless of its deleted flag.
func (r *EventRepositoryImpl) FindByID(ctx context.Context, id int) (*model.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		WHERE id = $1
	`, eventColumns)

	event, err := scanEvent(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}

	return event, nil
}

func (r *EventRepositoryImpl) FindByCriteria(ctx context.Context, criteria model.EventCriteria) ([]*model.Event, error) {
	wheres := []string{}
	args := []interface{}{}
	argPos := 1

	if criteria.Name != nil {
		wheres = append(wheres, fmt.Sprintf("name = $%d", argPos))
		args = append(args, *criteria.Name)
		argPos++
	}
	if criteria.StartDate != nil {
		wheres = append(wheres, fmt.Sprintf("start_date = $%d", argPos))
		args = append(args, *criteria.StartDate)
		argPos++
	}
	if criteria.SaleStart != nil {
		wheres = append(wheres, fmt.Sprintf("sale_start = $%d", argPos))
		args = append(args, *criteria.SaleStart)
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
		FROM events
	`, eventColumns)
	if len(wheres) > 0 {
		query += " WHERE " + strings.Join(wheres, " AND ")
	}
	query += " ORDER BY created_at DESC"

	return r.queryEvents(ctx, query, args...)
}

func (r *EventRepositoryImpl) Update(ctx context.Context, id int, params model.UpdateEventParams) (*model.Event, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	if params.Name != nil {
		sets = append(sets, fmt.Sprintf("name = $%d", argPos))
		args = append(args, *params.Name)
		argPos++
	}
	if params.Description != nil {
		sets = append(sets, fmt.Sprintf("description = $%d", argPos))
		args = append(args, *params.Description)
		argPos++
	}
	if params.StartDate != nil {
		sets = append(sets, fmt.Sprintf("start_date = $%d", argPos))
		args = append(args, *params.StartDate)
		argPos++
	}
	if params.EndDate != nil {
		sets = append(sets, fmt.Sprintf("end_date = $%d", argPos))
		args = append(args, *params.EndDate)
		argPos++
	}
	if params.SaleStart != nil {
		sets = append(sets, fmt.Sprintf("sale_start = $%d", argPos))
		args = append(args, *params.SaleStart)
		argPos++
	}
	if params.SaleEnd != nil {
		sets = append(sets, fmt.Sprintf("sale_end = $%d", argPos))
		args = append(args, *params.SaleEnd)
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
		UPDATE events
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), argPos, eventColumns)

	event, err := scanEvent(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEventNotFound
		}
		if isUniqueViolation(err) {
			return nil, apperrors.ErrEventNameTaken
		}
		return nil, err
	}

	return event, nil
}

func (r *EventRepositoryImpl) SoftDelete(ctx context.Context, id int) error {
	return setFlag(ctx, r.pool, "events", "deleted", true, id, apperrors.ErrEventNotFound)
}

func (r *EventRepositoryImpl) Restore(ctx context.Context, id int) error {
	return setFlag(ctx, r.pool, "events", "deleted", false, id, apperrors.ErrEventNotFound)
}

func (r *EventRepositoryImpl) Activate(ctx context.Context, id int) error {
	return setFlag(ctx, r.pool, "events", "is_active", true, id, apperrors.ErrEventNotFound)
}

func (r *EventRepositoryImpl) Deactivate(ctx context.Context, id int) error {
	return setFlag(ctx, r.pool, "events", "is_active", false, id, apperrors.ErrEventNotFound)
}

func (r *EventRepositoryImpl) Delete(ctx context.Context, id int) error {
	return hardDelete(ctx, r.pool, "events", id, apperrors.ErrEventNotFound)
}

func (r *EventRepositoryImpl) Count(ctx context.Context, criteria model.EventCriteria) (int, error) {
	wheres := []string{}
	args := []interface{}{}
	argPos := 1

	if criteria.Name != nil {
		wheres = append(wheres, fmt.Sprintf("name = $%d", argPos))
		args = append(args, *criteria.Name)
		argPos++
	}
	if criteria.StartDate != nil {
		wheres = append(wheres, fmt.Sprintf("start_date = $%d", argPos))
		args = append(args, *criteria.StartDate)
		argPos++
	}
	if criteria.SaleStart != nil {
		wheres = append(wheres, fmt.Sprintf("sale_start = $%d", argPos))
		args = append(args, *criteria.SaleStart)
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

	query := `SELECT COUNT(*) FROM events`
	if len(wheres) > 0 {
		query += " WHERE " + strings.Join(wheres, " AND ")
	}

	var count int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func (r *EventRepositoryImpl) GetPaginated(ctx context.Context, limit, offset int) ([]*model.Event, error) {
	if limit < 1 || offset < 0 {
		return nil, apperrors.ErrInvalidPagination
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		WHERE deleted = FALSE
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, eventColumns)

	return r.queryEvents(ctx, query, limit, offset)
}

func (r *EventRepositoryImpl) FindByName(ctx context.Context, name string) (*model.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		WHERE name = $1
	`, eventColumns)

	event, err := scanEvent(r.pool.QueryRow(ctx, query, name))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}

	return event, nil
}

func (r *EventRepositoryImpl) ListActive(ctx context.Context) ([]*model.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		WHERE is_active = TRUE AND deleted = FALSE
		ORDER BY created_at DESC
	`, eventColumns)

	return r.queryEvents(ctx, query)
}

func (r *EventRepositoryImpl) ListByStartDate(ctx context.Context, date time.Time) ([]*model.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		WHERE start_date = $1
		ORDER BY created_at DESC
	`, eventColumns)

	return r.queryEvents(ctx, query, date)
}

func (r *EventRepositoryImpl) ListBySaleStart(ctx context.Context, date time.Time) ([]*model.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		WHERE sale_start = $1
		ORDER BY created_at DESC
	`, eventColumns)

	return r.queryEvents(ctx, query, date)
}
