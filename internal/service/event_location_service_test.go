package service_test

import (
	"context"
	"testing"

	"event-booking-api/internal/model"
	"event-booking-api/internal/repository/mocks"
	"event-booking-api/internal/service"
	apperrors "event-booking-api/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupEventLocationService() (
	*mocks.EventLocationRepositoryMock,
	*mocks.EventRepositoryMock,
	*mocks.LocationRepositoryMock,
	service.EventLocationService,
) {
	repo := mocks.NewEventLocationRepositoryMock()
	eventRepo := mocks.NewEventRepositoryMock()
	locationRepo := mocks.NewLocationRepositoryMock()
	svc := service.NewEventLocationService(repo, eventRepo, locationRepo)
	return repo, eventRepo, locationRepo, svc
}

func TestEventLocationService_Create(t *testing.T) {
	ctx := context.Background()

	newOffering := func() *model.EventLocation {
		return &model.EventLocation{
			Name:       "VIP",
			Price:      150,
			EventID:    1,
			LocationID: 2,
		}
	}

	t.Run("Success", func(t *testing.T) {
		repo, eventRepo, locationRepo, svc := setupEventLocationService()
		el := newOffering()

		eventRepo.On("FindByID", ctx, 1).Return(&model.Event{ID: 1}, nil).Once()
		locationRepo.On("FindByID", ctx, 2).Return(&model.Location{ID: 2}, nil).Once()
		repo.On("Create", ctx, el).Return(&model.EventLocation{ID: 3, Name: "VIP"}, nil).Once()

		created, err := svc.Create(ctx, el)

		require.NoError(t, err)
		assert.Equal(t, 3, created.ID)
		assert.NotZero(t, el.EventLocationID)
		repo.AssertExpectations(t)
	})

	t.Run("Failed - parent event missing", func(t *testing.T) {
		repo, eventRepo, _, svc := setupEventLocationService()

		eventRepo.On("FindByID", ctx, 1).Return(nil, apperrors.ErrEventNotFound).Once()

		_, err := svc.Create(ctx, newOffering())

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("Failed - parent event soft-deleted", func(t *testing.T) {
		repo, eventRepo, _, svc := setupEventLocationService()

		eventRepo.On("FindByID", ctx, 1).Return(&model.Event{ID: 1, Deleted: true}, nil).Once()

		_, err := svc.Create(ctx, newOffering())

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("Failed - parent location soft-deleted", func(t *testing.T) {
		repo, eventRepo, locationRepo, svc := setupEventLocationService()

		eventRepo.On("FindByID", ctx, 1).Return(&model.Event{ID: 1}, nil).Once()
		locationRepo.On("FindByID", ctx, 2).Return(&model.Location{ID: 2, Deleted: true}, nil).Once()

		_, err := svc.Create(ctx, newOffering())

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrLocationNotFound)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("Failed - negative price", func(t *testing.T) {
		repo, eventRepo, _, svc := setupEventLocationService()

		el := newOffering()
		el.Price = -1

		_, err := svc.Create(ctx, el)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		eventRepo.AssertNotCalled(t, "FindByID")
		repo.AssertNotCalled(t, "Create")
	})
}

func TestEventLocationService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - reparented to another event", func(t *testing.T) {
		repo, eventRepo, _, svc := setupEventLocationService()

		newEventID := 9
		params := model.UpdateEventLocationParams{EventID: &newEventID}

		eventRepo.On("FindByID", ctx, 9).Return(&model.Event{ID: 9}, nil).Once()
		repo.On("Update", ctx, 3, params).Return(&model.EventLocation{ID: 3, EventID: 9}, nil).Once()

		updated, err := svc.Update(ctx, 3, params)

		require.NoError(t, err)
		assert.Equal(t, 9, updated.EventID)
		repo.AssertExpectations(t)
	})

	t.Run("Failed - new parent missing", func(t *testing.T) {
		repo, eventRepo, _, svc := setupEventLocationService()

		newEventID := 9
		eventRepo.On("FindByID", ctx, 9).Return(nil, apperrors.ErrEventNotFound).Once()

		_, err := svc.Update(ctx, 3, model.UpdateEventLocationParams{EventID: &newEventID})

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
		repo.AssertNotCalled(t, "Update")
	})
}

func TestEventLocationService_IsAvailable(t *testing.T) {
	ctx := context.Background()

	t.Run("Available - returns offering with parents attached", func(t *testing.T) {
		repo, _, _, svc := setupEventLocationService()

		el := &model.EventLocation{
			ID:       5,
			Name:     "VIP",
			Event:    &model.Event{ID: 1, Name: "Concierto"},
			Location: &model.Location{ID: 2, Name: "Estadio"},
		}
		repo.On("FindAvailable", mock.Anything, 5, mock.AnythingOfType("time.Time")).Return(el, nil).Once()

		got, err := svc.IsAvailable(ctx, 5)

		require.NoError(t, err)
		assert.Equal(t, "Concierto", got.Event.Name)
		assert.Equal(t, "Estadio", got.Location.Name)
		repo.AssertNotCalled(t, "FindByID")
	})

	t.Run("Unavailable - offering exists but fails a predicate", func(t *testing.T) {
		repo, _, _, svc := setupEventLocationService()

		repo.On("FindAvailable", mock.Anything, 5, mock.AnythingOfType("time.Time")).
			Return(nil, apperrors.ErrEventLocationUnavailable).Once()
		repo.On("FindByID", mock.Anything, 5).Return(&model.EventLocation{ID: 5, IsActive: false}, nil).Once()

		_, err := svc.IsAvailable(ctx, 5)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrEventLocationUnavailable)
		repo.AssertExpectations(t)
	})

	t.Run("NotFound - offering does not exist at all", func(t *testing.T) {
		repo, _, _, svc := setupEventLocationService()

		repo.On("FindAvailable", mock.Anything, 99, mock.AnythingOfType("time.Time")).
			Return(nil, apperrors.ErrEventLocationUnavailable).Once()
		repo.On("FindByID", mock.Anything, 99).Return(nil, apperrors.ErrEventLocationNotFound).Once()

		_, err := svc.IsAvailable(ctx, 99)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrEventLocationNotFound)
		repo.AssertExpectations(t)
	})
}
