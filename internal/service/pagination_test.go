package service_test

import (
	"context"
	"fmt"
	"testing"

	"event-booking-api/internal/service"
	apperrors "event-booking-api/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedStore simulates a store of n non-deleted rows for pagination tests.
func fixedStore(n int) (
	func(ctx context.Context, limit, offset int) ([]*int, error),
	func(ctx context.Context) (int, error),
) {
	fetch := func(ctx context.Context, limit, offset int) ([]*int, error) {
		items := make([]*int, 0)
		for i := offset; i < n && i < offset+limit; i++ {
			v := i
			items = append(items, &v)
		}
		return items, nil
	}
	count := func(ctx context.Context) (int, error) {
		return n, nil
	}
	return fetch, count
}

func TestPaginate(t *testing.T) {
	ctx := context.Background()

	t.Run("FirstPageOf25", func(t *testing.T) {
		fetch, count := fixedStore(25)

		result, err := service.Paginate(ctx, 0, 10, fetch, count)

		require.NoError(t, err)
		assert.Len(t, result.Data, 10)
		assert.Equal(t, 1, result.Pagination.CurrentPage)
		assert.Equal(t, 10, result.Pagination.ItemsPerPage)
		assert.Equal(t, 25, result.Pagination.TotalItems)
		assert.Equal(t, 3, result.Pagination.TotalPages)
		assert.True(t, result.Pagination.HasNextPage)
		assert.False(t, result.Pagination.HasPreviousPage)
	})

	t.Run("LastPartialPage", func(t *testing.T) {
		fetch, count := fixedStore(25)

		result, err := service.Paginate(ctx, 2, 10, fetch, count)

		require.NoError(t, err)
		assert.Len(t, result.Data, 5)
		assert.Equal(t, 3, result.Pagination.CurrentPage)
		assert.False(t, result.Pagination.HasNextPage)
		assert.True(t, result.Pagination.HasPreviousPage)
	})

	t.Run("EmptyStore", func(t *testing.T) {
		fetch, count := fixedStore(0)

		result, err := service.Paginate(ctx, 0, 10, fetch, count)

		require.NoError(t, err)
		assert.Empty(t, result.Data)
		assert.Equal(t, 0, result.Pagination.TotalItems)
		assert.Equal(t, 0, result.Pagination.TotalPages)
		assert.False(t, result.Pagination.HasNextPage)
		assert.False(t, result.Pagination.HasPreviousPage)
	})

	t.Run("PageBeyondEmptyStore", func(t *testing.T) {
		fetch, count := fixedStore(0)

		result, err := service.Paginate(ctx, 4, 10, fetch, count)

		require.NoError(t, err)
		assert.Empty(t, result.Data)
		assert.Equal(t, 5, result.Pagination.CurrentPage)
		assert.False(t, result.Pagination.HasNextPage)
		assert.True(t, result.Pagination.HasPreviousPage)
	})

	t.Run("InvalidItemsPerPage_StoreUntouched", func(t *testing.T) {
		fetch := func(ctx context.Context, limit, offset int) ([]*int, error) {
			t.Error("fetch must not be called")
			return nil, nil
		}
		count := func(ctx context.Context) (int, error) {
			t.Error("count must not be called")
			return 0, nil
		}

		_, err := service.Paginate(ctx, 0, 0, fetch, count)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidPagination)
	})

	t.Run("NegativePage", func(t *testing.T) {
		fetch, count := fixedStore(10)

		_, err := service.Paginate(ctx, -1, 10, fetch, count)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidPagination)
	})
}

// TotalPages must equal ceil(totalItems/itemsPerPage) and HasNextPage must
// equal currentPage < totalPages, for any store size and page size.
func TestPaginate_MetadataProperty(t *testing.T) {
	ctx := context.Background()

	for _, totalItems := range []int{0, 1, 9, 10, 11, 25, 100} {
		for _, perPage := range []int{1, 3, 10, 50} {
			t.Run(fmt.Sprintf("items=%d_perPage=%d", totalItems, perPage), func(t *testing.T) {
				fetch, count := fixedStore(totalItems)

				result, err := service.Paginate(ctx, 0, perPage, fetch, count)

				require.NoError(t, err)
				wantPages := (totalItems + perPage - 1) / perPage
				assert.Equal(t, wantPages, result.Pagination.TotalPages)
				assert.Equal(t, result.Pagination.CurrentPage < wantPages, result.Pagination.HasNextPage)
			})
		}
	}
}
