package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EntityStore is the persistence contract shared by all three entities.
// T is the row type, U its partial-update params, C its equality criteria.
//
// Soft-delete conventions: FindAll and FindByID see deleted rows, GetPaginated
// never does. SoftDelete/Restore/Activate/Deactivate are idempotent on rows
// that already match the target state.
type EntityStore[T any, U any, C any] interface {
	Create(ctx context.Context, entity *T) (*T, error)
	FindAll(ctx context.Context) ([]*T, error)
	FindByID(ctx context.Context, id int) (*T, error)
	FindByCriteria(ctx context.Context, criteria C) ([]*T, error)
	Update(ctx context.Context, id int, params U) (*T, error)
	SoftDelete(ctx context.Context, id int) error
	Restore(ctx context.Context, id int) error
	Activate(ctx context.Context, id int) error
	Deactivate(ctx context.Context, id int) error
	// Delete removes the row permanently. Kept off the business path; soft
	// delete is the default flow.
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context, criteria C) (int, error)
	GetPaginated(ctx context.Context, limit, offset int) ([]*T, error)
}

// setFlag flips a boolean column and refreshes updated_at. The WHERE clause
// matches on id alone, so repeating the same call is a no-op rather than an
// error; zero rows affected means the row does not exist at all.
func setFlag(ctx context.Context, pool *pgxpool.Pool, table, column string, value bool, id int, notFound error) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1, updated_at = $2
		WHERE id = $3
	`, table, column)

	result, err := pool.Exec(ctx, query, value, time.Now().UTC(), id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return notFound
	}

	return nil
}

// hardDelete removes a row by id, bypassing the soft-delete flag.
func hardDelete(ctx context.Context, pool *pgxpool.Pool, table string, id int, notFound error) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table)

	result, err := pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return notFound
	}

	return nil
}

// isUniqueViolation reports whether err is a Postgres unique-index violation
// (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
