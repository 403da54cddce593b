package service

import (
	"context"

	"event-booking-api/internal/model"
	apperrors "event-booking-api/pkg/app_errors"

	"golang.org/x/sync/errgroup"
)

// Paginate turns a 0-based page request into a fetched slice plus page
// metadata. fetch must exclude soft-deleted rows and count must count the
// same population. Both reads run concurrently; they are two independent
// queries, not one snapshot, so a write landing between them can leave
// totalItems out of step with data. Accepted limitation.
func Paginate[T any](
	ctx context.Context,
	page, itemsPerPage int,
	fetch func(ctx context.Context, limit, offset int) ([]*T, error),
	count func(ctx context.Context) (int, error),
) (*model.PaginatedResult[T], error) {
	if itemsPerPage < 1 || page < 0 {
		return nil, apperrors.ErrInvalidPagination
	}

	offset := page * itemsPerPage

	var (
		items      []*T
		totalItems int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = fetch(gctx, itemsPerPage, offset)
		return err
	})
	g.Go(func() error {
		var err error
		totalItems, err = count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	totalPages := (totalItems + itemsPerPage - 1) / itemsPerPage
	currentPage := page + 1

	return &model.PaginatedResult[T]{
		Data: items,
		Pagination: model.Pagination{
			CurrentPage:     currentPage,
			ItemsPerPage:    itemsPerPage,
			TotalItems:      totalItems,
			TotalPages:      totalPages,
			HasNextPage:     currentPage < totalPages,
			HasPreviousPage: currentPage > 1,
		},
	}, nil
}
