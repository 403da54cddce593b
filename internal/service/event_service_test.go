package service_test

import (
	"context"
	"testing"
	"time"

	"event-booking-api/internal/model"
	"event-booking-api/internal/repository/mocks"
	"event-booking-api/internal/service"
	apperrors "event-booking-api/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEventService_Create(t *testing.T) {
	ctx := context.Background()
	saleStart := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	saleEnd := time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC)

	newEvent := func() *model.Event {
		return &model.Event{
			Name:      "Concierto",
			StartDate: saleStart,
			EndDate:   saleEnd,
			SaleStart: saleStart,
			SaleEnd:   saleEnd,
		}
	}

	t.Run("Success", func(t *testing.T) {
		repo := mocks.NewEventRepositoryMock()
		svc := service.NewEventService(repo)
		event := newEvent()

		repo.On("FindByName", ctx, "Concierto").Return(nil, apperrors.ErrEventNotFound).Once()
		repo.On("Create", ctx, event).Return(&model.Event{ID: 1, Name: "Concierto"}, nil).Once()

		created, err := svc.Create(ctx, event)

		require.NoError(t, err)
		assert.Equal(t, 1, created.ID)
		// service assigns the public uuid before persisting
		assert.NotZero(t, event.EventID)
		repo.AssertExpectations(t)
	})

	t.Run("Failed - name taken", func(t *testing.T) {
		repo := mocks.NewEventRepositoryMock()
		svc := service.NewEventService(repo)

		repo.On("FindByName", ctx, "Concierto").Return(&model.Event{ID: 7, Name: "Concierto"}, nil).Once()

		_, err := svc.Create(ctx, newEvent())

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrEventNameTaken)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("Failed - empty name", func(t *testing.T) {
		repo := mocks.NewEventRepositoryMock()
		svc := service.NewEventService(repo)

		event := newEvent()
		event.Name = ""

		_, err := svc.Create(ctx, event)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		repo.AssertNotCalled(t, "FindByName")
	})

	t.Run("Failed - sale start after sale end", func(t *testing.T) {
		repo := mocks.NewEventRepositoryMock()
		svc := service.NewEventService(repo)

		event := newEvent()
		event.SaleStart = saleEnd.Add(time.Hour)

		_, err := svc.Create(ctx, event)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidSaleWindow)
		repo.AssertNotCalled(t, "Create")
	})
}

func TestEventService_Update(t *testing.T) {
	ctx := context.Background()
	saleStart := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	saleEnd := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	existing := &model.Event{ID: 1, Name: "Concierto", SaleStart: saleStart, SaleEnd: saleEnd}

	t.Run("Success", func(t *testing.T) {
		repo := mocks.NewEventRepositoryMock()
		svc := service.NewEventService(repo)

		name := "Concierto 2025"
		params := model.UpdateEventParams{Name: &name}

		repo.On("FindByID", ctx, 1).Return(existing, nil).Once()
		repo.On("Update", ctx, 1, params).Return(&model.Event{ID: 1, Name: name}, nil).Once()

		updated, err := svc.Update(ctx, 1, params)

		require.NoError(t, err)
		assert.Equal(t, name, updated.Name)
		repo.AssertExpectations(t)
	})

	t.Run("Failed - not found", func(t *testing.T) {
		repo := mocks.NewEventRepositoryMock()
		svc := service.NewEventService(repo)

		name := "Any"
		repo.On("FindByID", ctx, 99).Return(nil, apperrors.ErrEventNotFound).Once()

		_, err := svc.Update(ctx, 99, model.UpdateEventParams{Name: &name})

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
		repo.AssertNotCalled(t, "Update")
	})

	t.Run("Failed - patched sale start crosses existing sale end", func(t *testing.T) {
		repo := mocks.NewEventRepositoryMock()
		svc := service.NewEventService(repo)

		badStart := saleEnd.Add(time.Hour)
		repo.On("FindByID", ctx, 1).Return(existing, nil).Once()

		_, err := svc.Update(ctx, 1, model.UpdateEventParams{SaleStart: &badStart})

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidSaleWindow)
		repo.AssertNotCalled(t, "Update")
	})

	t.Run("Success - window moved as a whole", func(t *testing.T) {
		repo := mocks.NewEventRepositoryMock()
		svc := service.NewEventService(repo)

		newStart := saleEnd.Add(time.Hour)
		newEnd := saleEnd.Add(48 * time.Hour)
		params := model.UpdateEventParams{SaleStart: &newStart, SaleEnd: &newEnd}

		repo.On("FindByID", ctx, 1).Return(existing, nil).Once()
		repo.On("Update", ctx, 1, params).Return(existing, nil).Once()

		_, err := svc.Update(ctx, 1, params)

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestEventService_GetPaginated(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := mocks.NewEventRepositoryMock()
		svc := service.NewEventService(repo)

		events := []*model.Event{{ID: 2}, {ID: 1}}
		repo.On("GetPaginated", mock.Anything, 10, 0).Return(events, nil).Once()
		repo.On("Count", mock.Anything, mock.Anything).Return(2, nil).Once()

		result, err := svc.GetPaginated(ctx, 0, 10)

		require.NoError(t, err)
		assert.Len(t, result.Data, 2)
		assert.Equal(t, 1, result.Pagination.CurrentPage)
		assert.Equal(t, 1, result.Pagination.TotalPages)
		repo.AssertExpectations(t)
	})

	t.Run("Failed - invalid page size rejected before the store", func(t *testing.T) {
		repo := mocks.NewEventRepositoryMock()
		svc := service.NewEventService(repo)

		_, err := svc.GetPaginated(ctx, 0, 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidPagination)
		repo.AssertNotCalled(t, "GetPaginated")
		repo.AssertNotCalled(t, "Count")
	})
}

func TestEventService_Toggles(t *testing.T) {
	ctx := context.Background()

	t.Run("Delete is soft", func(t *testing.T) {
		repo := mocks.NewEventRepositoryMock()
		svc := service.NewEventService(repo)

		repo.On("SoftDelete", ctx, 1).Return(nil).Once()

		require.NoError(t, svc.Delete(ctx, 1))
		repo.AssertNotCalled(t, "Delete")
		repo.AssertExpectations(t)
	})

	t.Run("Restore", func(t *testing.T) {
		repo := mocks.NewEventRepositoryMock()
		svc := service.NewEventService(repo)

		repo.On("Restore", ctx, 1).Return(nil).Once()

		require.NoError(t, svc.Restore(ctx, 1))
		repo.AssertExpectations(t)
	})

	t.Run("Deactivate not found", func(t *testing.T) {
		repo := mocks.NewEventRepositoryMock()
		svc := service.NewEventService(repo)

		repo.On("Deactivate", ctx, 42).Return(apperrors.ErrEventNotFound).Once()

		err := svc.Deactivate(ctx, 42)
		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})
}
