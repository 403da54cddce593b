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

type EventLocationRepository interface {
	EntityStore[model.EventLocation, model.UpdateEventLocationParams, model.EventLocationCriteria]
	ListByEvent(ctx context.Context, eventID int) ([]*model.EventLocation, error)
	ListByLocation(ctx context.Context, locationID int) ([]*model.EventLocation, error)
	ListActiveByEvent(ctx context.Context, eventID int) ([]*model.EventLocation, error)
	// FindAvailable returns the offering only when it and both parents are
	// active, not deleted, and now falls inside the event's sale window.
	FindAvailable(ctx context.Context, id int, now time.Time) (*model.EventLocation, error)
}

type EventLocationRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewEventLocationRepository(pool *pgxpool.Pool) EventLocationRepository {
	return &EventLocationRepositoryImpl{
		pool: pool,
	}
}

// Every read joins both parents and attaches them; relations are always
// loaded explicitly, never lazily.
const eventLocationJoinColumns = `el.id, el.event_location_id, el.name, el.price,
	el.event_id, el.location_id, el.is_active, el.deleted, el.created_at, el.updated_at,
	e.id, e.event_id, e.name, e.description, e.start_date, e.end_date,
	e.sale_start, e.sale_end, e.is_active, e.deleted, e.created_at, e.updated_at,
	l.id, l.location_id, l.name, l.capacity, l.is_active, l.deleted, l.created_at, l.updated_at`

const eventLocationJoin = `FROM event_locations el
	JOIN events e ON e.id = el.event_id
	JOIN locations l ON l.id = el.location_id`

func scanEventLocation(row pgx.Row) (*model.EventLocation, error) {
	var el model.EventLocation
	var event model.Event
	var location model.Location

	err := row.Scan(
		&el.ID,
		&el.EventLocationID,
		&el.Name,
		&el.Price,
		&el.EventID,
		&el.LocationID,
		&el.IsActive,
		&el.Deleted,
		&el.CreatedAt,
		&el.UpdatedAt,
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

	el.Event = &event
	el.Location = &location
	return &el, nil
}

func (r *EventLocationRepositoryImpl) queryEventLocations(ctx context.Context, query string, args ...interface{}) ([]*model.EventLocation, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	eventLocations := make([]*model.EventLocation, 0)
	for rows.Next() {
		el, err := scanEventLocation(rows)
		if err != nil {
			return nil, err
		}
		eventLocations = append(eventLocations, el)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return eventLocations, nil
}

func (r *EventLocationRepositoryImpl) Create(ctx context.Context, el *model.EventLocation) (*model.EventLocation, error) {
	query := `
		INSERT INTO event_locations (event_location_id, name, price, event_id, location_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int
	err := r.pool.QueryRow(ctx, query,
		el.EventLocationID, el.Name, el.Price, el.EventID, el.LocationID,
	).Scan(&id)
	if err != nil {
		return nil, err
	}

	return r.FindByID(ctx, id)
}

func (r *EventLocationRepositoryImpl) FindAll(ctx context.Context) ([]*model.EventLocation, error) {
	query := fmt.Sprintf(`
		SELECT %s
		%s
		ORDER BY el.created_at DESC
	`, eventLocationJoinColumns, eventLocationJoin)

	return r.queryEventLocations(ctx, query)
}

func (r *EventLocationRepositoryImpl) FindByID(ctx context.Context, id int) (*model.EventLocation, error) {
	query := fmt.Sprintf(`
		SELECT %s
		%s
		WHERE el.id = $1
	`, eventLocationJoinColumns, eventLocationJoin)

	el, err := scanEventLocation(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEventLocationNotFound
		}
		return nil, err
	}

	return el, nil
}

func (r *EventLocationRepositoryImpl) FindByCriteria(ctx context.Context, criteria model.EventLocationCriteria) ([]*model.EventLocation, error) {
	wheres := []string{}
	args := []interface{}{}
	argPos := 1

	if criteria.Name != nil {
		wheres = append(wheres, fmt.Sprintf("el.name = $%d", argPos))
		args = append(args, *criteria.Name)
		argPos++
	}
	if criteria.EventID != nil {
		wheres = append(wheres, fmt.Sprintf("el.event_id = $%d", argPos))
		args = append(args, *criteria.EventID)
		argPos++
	}
	if criteria.LocationID != nil {
		wheres = append(wheres, fmt.Sprintf("el.location_id = $%d", argPos))
		args = append(args, *criteria.LocationID)
		argPos++
	}
	if criteria.IsActive != nil {
		wheres = append(wheres, fmt.Sprintf("el.is_active = $%d", argPos))
		args = append(args, *criteria.IsActive)
		argPos++
	}
	if criteria.Deleted != nil {
		wheres = append(wheres, fmt.Sprintf("el.deleted = $%d", argPos))
		args = append(args, *criteria.Deleted)
		argPos++
	}

	query := fmt.Sprintf(`
		SELECT %s
		%s
	`, eventLocationJoinColumns, eventLocationJoin)
	if len(wheres) > 0 {
		query += " WHERE " + strings.Join(wheres, " AND ")
	}
	query += " ORDER BY el.created_at DESC"

	return r.queryEventLocations(ctx, query, args...)
}

func (r *EventLocationRepositoryImpl) Update(ctx context.Context, id int, params model.UpdateEventLocationParams) (*model.EventLocation, error) {
	sets := []string{}
	args := []interface{}{}
	argPos := 1

	if params.Name != nil {
		sets = append(sets, fmt.Sprintf("name = $%d", argPos))
		args = append(args, *params.Name)
		argPos++
	}
	if params.Price != nil {
		sets = append(sets, fmt.Sprintf("price = $%d", argPos))
		args = append(args, *params.Price)
		argPos++
	}
	if params.EventID != nil {
		sets = append(sets, fmt.Sprintf("event_id = $%d", argPos))
		args = append(args, *params.EventID)
		argPos++
	}
	if params.LocationID != nil {
		sets = append(sets, fmt.Sprintf("location_id = $%d", argPos))
		args = append(args, *params.LocationID)
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
		UPDATE event_locations
		SET %s
		WHERE id = $%d
		RETURNING id
	`, strings.Join(sets, ", "), argPos)

	var updatedID int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEventLocationNotFound
		}
		return nil, err
	}

	return r.FindByID(ctx, updatedID)
}

func (r *EventLocationRepositoryImpl) SoftDelete(ctx context.Context, id int) error {
	return setFlag(ctx, r.pool, "event_locations", "deleted", true, id, apperrors.ErrEventLocationNotFound)
}

func (r *EventLocationRepositoryImpl) Restore(ctx context.Context, id int) error {
	return setFlag(ctx, r.pool, "event_locations", "deleted", false, id, apperrors.ErrEventLocationNotFound)
}

func (r *EventLocationRepositoryImpl) Activate(ctx context.Context, id int) error {
	return setFlag(ctx, r.pool, "event_locations", "is_active", true, id, apperrors.ErrEventLocationNotFound)
}

func (r *EventLocationRepositoryImpl) Deactivate(ctx context.Context, id int) error {
	return setFlag(ctx, r.pool, "event_locations", "is_active", false, id, apperrors.ErrEventLocationNotFound)
}

func (r *EventLocationRepositoryImpl) Delete(ctx context.Context, id int) error {
	return hardDelete(ctx, r.pool, "event_locations", id, apperrors.ErrEventLocationNotFound)
}

func (r *EventLocationRepositoryImpl) Count(ctx context.Context, criteria model.EventLocationCriteria) (int, error) {
	wheres := []string{}
	args := []interface{}{}
	argPos := 1

	if criteria.Name != nil {
		wheres = append(wheres, fmt.Sprintf("name = $%d", argPos))
		args = append(args, *criteria.Name)
		argPos++
	}
	if criteria.EventID != nil {
		wheres = append(wheres, fmt.Sprintf("event_id = $%d", argPos))
		args = append(args, *criteria.EventID)
		argPos++
	}
	if criteria.LocationID != nil {
		wheres = append(wheres, fmt.Sprintf("location_id = $%d", argPos))
		args = append(args, *criteria.LocationID)
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

	query := `SELECT COUNT(*) FROM event_locations`
	if len(wheres) > 0 {
		query += " WHERE " + strings.Join(wheres, " AND ")
	}

	var count int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

func (r *EventLocationRepositoryImpl) GetPaginated(ctx context.Context, limit, offset int) ([]*model.EventLocation, error) {
	if limit < 1 || offset < 0 {
		return nil, apperrors.ErrInvalidPagination
	}

	query := fmt.Sprintf(`
		SELECT %s
		%s
		WHERE el.deleted = FALSE
		ORDER BY el.created_at DESC
		LIMIT $1 OFFSET $2
	`, eventLocationJoinColumns, eventLocationJoin)

	return r.queryEventLocations(ctx, query, limit, offset)
}

func (r *EventLocationRepositoryImpl) ListByEvent(ctx context.Context, eventID int) ([]*model.EventLocation, error) {
	query := fmt.Sprintf(`
		SELECT %s
		%s
		WHERE el.event_id = $1
		ORDER BY el.created_at DESC
	`, eventLocationJoinColumns, eventLocationJoin)

	return r.queryEventLocations(ctx, query, eventID)
}

func (r *EventLocationRepositoryImpl) ListByLocation(ctx context.Context, locationID int) ([]*model.EventLocation, error) {
	query := fmt.Sprintf(`
		SELECT %s
		%s
		WHERE el.location_id = $1
		ORDER BY el.created_at DESC
	`, eventLocationJoinColumns, eventLocationJoin)

	return r.queryEventLocations(ctx, query, locationID)
}

func (r *EventLocationRepositoryImpl) ListActiveByEvent(ctx context.Context, eventID int) ([]*model.EventLocation, error) {
	query := fmt.Sprintf(`
		SELECT %s
		%s
		WHERE el.event_id = $1 AND el.is_active = TRUE AND el.deleted = FALSE
		ORDER BY el.created_at DESC
	`, eventLocationJoinColumns, eventLocationJoin)

	return r.queryEventLocations(ctx, query, eventID)
}

// FindAvailable evaluates the whole purchasability conjunction in a single
// join keyed by el.id. The sale window is half-open: open at sale_start,
// closed at sale_end.
func (r *EventLocationRepositoryImpl) FindAvailable(ctx context.Context, id int, now time.Time) (*model.EventLocation, error) {
	query := fmt.Sprintf(`
		SELECT %s
		%s
		WHERE el.id = $1
			AND el.is_active = TRUE AND el.deleted = FALSE
			AND e.is_active = TRUE AND e.deleted = FALSE
			AND l.is_active = TRUE AND l.deleted = FALSE
			AND e.sale_start <= $2 AND e.sale_end > $2
	`, eventLocationJoinColumns, eventLocationJoin)

	el, err := scanEventLocation(r.pool.QueryRow(ctx, query, id, now))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.ErrEventLocationUnavailable
		}
		return nil, err
	}

	return el, nil
}
