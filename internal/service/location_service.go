package service

import (
	"context"
	"errors"

	"event-booking-api/internal/model"
	"event-booking-api/internal/repository"
	apperrors "event-booking-api/pkg/app_errors"

	"github.com/google/uuid"
)

type LocationService interface {
	GetAll(ctx context.Context) ([]*model.Location, error)
	GetActive(ctx context.Context) ([]*model.Location, error)
	GetByID(ctx context.Context, id int) (*model.Location, error)
	GetByName(ctx context.Context, name string) (*model.Location, error)
	GetPaginated(ctx context.Context, page, itemsPerPage int) (*model.PaginatedResult[model.Location], error)
	Create(ctx context.Context, location *model.Location) (*model.Location, error)
	Update(ctx context.Context, id int, params model.UpdateLocationParams) (*model.Location, error)
	Delete(ctx context.Context, id int) error
	Restore(ctx context.Context, id int) error
	Activate(ctx context.Context, id int) error
	Deactivate(ctx context.Context, id int) error
}

type LocationServiceImpl struct {
	repo repository.LocationRepository
}

func NewLocationService(repo repository.LocationRepository) LocationService {
	return &LocationServiceImpl{repo: repo}
}

func (s *LocationServiceImpl) GetAll(ctx context.Context) ([]*model.Location, error) {
	return s.repo.FindAll(ctx)
}

func (s *LocationServiceImpl) GetActive(ctx context.Context) ([]*model.Location, error) {
	return s.repo.ListActive(ctx)
}

func (s *LocationServiceImpl) GetByID(ctx context.Context, id int) (*model.Location, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *LocationServiceImpl) GetByName(ctx context.Context, name string) (*model.Location, error) {
	return s.repo.FindByName(ctx, name)
}

func (s *LocationServiceImpl) GetPaginated(ctx context.Context, page, itemsPerPage int) (*model.PaginatedResult[model.Location], error) {
	deleted := false
	return Paginate(ctx, page, itemsPerPage,
		s.repo.GetPaginated,
		func(ctx context.Context) (int, error) {
			return s.repo.Count(ctx, model.LocationCriteria{Deleted: &deleted})
		},
	)
}

func (s *LocationServiceImpl) Create(ctx context.Context, location *model.Location) (*model.Location, error) {
	if location.Name == "" || location.Capacity <= 0 {
		return nil, apperrors.ErrInvalidInput
	}

	_, err := s.repo.FindByName(ctx, location.Name)
	if err == nil {
		return nil, apperrors.ErrLocationNameTaken
	}
	if !errors.Is(err, apperrors.ErrLocationNotFound) {
		return nil, err
	}

	if location.LocationID == uuid.Nil {
		location.LocationID = uuid.New()
	}
	return s.repo.Create(ctx, location)
}

func (s *LocationServiceImpl) Update(ctx context.Context, id int, params model.UpdateLocationParams) (*model.Location, error) {
	if params.Capacity != nil && *params.Capacity <= 0 {
		return nil, apperrors.ErrInvalidInput
	}
	return s.repo.Update(ctx, id, params)
}

func (s *LocationServiceImpl) Delete(ctx context.Context, id int) error {
	return s.repo.SoftDelete(ctx, id)
}

func (s *LocationServiceImpl) Restore(ctx context.Context, id int) error {
	return s.repo.Restore(ctx, id)
}

func (s *LocationServiceImpl) Activate(ctx context.Context, id int) error {
	return s.repo.Activate(ctx, id)
}

func (s *LocationServiceImpl) Deactivate(ctx context.Context, id int) error {
	return s.repo.Deactivate(ctx, id)
}
