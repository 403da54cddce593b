package service

import (
	"context"
	"errors"
	"time"

	"event-booking-api/internal/model"
	"event-booking-api/internal/repository"
	apperrors "event-booking-api/pkg/app_errors"

	"github.com/google/uuid"
)

type EventLocationService interface {
	GetAll(ctx context.Context) ([]*model.EventLocation, error)
	GetByID(ctx context.Context, id int) (*model.EventLocation, error)
	GetByEvent(ctx context.Context, eventID int) ([]*model.EventLocation, error)
	GetByLocation(ctx context.Context, locationID int) ([]*model.EventLocation, error)
	GetActiveByEvent(ctx context.Context, eventID int) ([]*model.EventLocation, error)
	GetPaginated(ctx context.Context, page, itemsPerPage int) (*model.PaginatedResult[model.EventLocation], error)
	Create(ctx context.Context, el *model.EventLocation) (*model.EventLocation, error)
	Update(ctx context.Context, id int, params model.UpdateEventLocationParams) (*model.EventLocation, error)
	Delete(ctx context.Context, id int) error
	Restore(ctx context.Context, id int) error
	Activate(ctx context.Context, id int) error
	Deactivate(ctx context.Context, id int) error
	// IsAvailable returns the offering with both parents attached when it is
	// currently purchasable, ErrEventLocationNotFound when no such row exists,
	// and ErrEventLocationUnavailable when the row exists but fails a
	// predicate (inactive or deleted anywhere in the chain, or outside the
	// sale window).
	IsAvailable(ctx context.Context, id int) (*model.EventLocation, error)
}

type EventLocationServiceImpl struct {
	repo         repository.EventLocationRepository
	eventRepo    repository.EventRepository
	locationRepo repository.LocationRepository
}

func NewEventLocationService(
	repo repository.EventLocationRepository,
	eventRepo repository.EventRepository,
	locationRepo repository.LocationRepository,
) EventLocationService {
	return &EventLocationServiceImpl{
		repo:         repo,
		eventRepo:    eventRepo,
		locationRepo: locationRepo,
	}
}

func (s *EventLocationServiceImpl) GetAll(ctx context.Context) ([]*model.EventLocation, error) {
	return s.repo.FindAll(ctx)
}

func (s *EventLocationServiceImpl) GetByID(ctx context.Context, id int) (*model.EventLocation, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *EventLocationServiceImpl) GetByEvent(ctx context.Context, eventID int) ([]*model.EventLocation, error) {
	return s.repo.ListByEvent(ctx, eventID)
}

func (s *EventLocationServiceImpl) GetByLocation(ctx context.Context, locationID int) ([]*model.EventLocation, error) {
	return s.repo.ListByLocation(ctx, locationID)
}

func (s *EventLocationServiceImpl) GetActiveByEvent(ctx context.Context, eventID int) ([]*model.EventLocation, error) {
	return s.repo.ListActiveByEvent(ctx, eventID)
}

func (s *EventLocationServiceImpl) GetPaginated(ctx context.Context, page, itemsPerPage int) (*model.PaginatedResult[model.EventLocation], error) {
	deleted := false
	return Paginate(ctx, page, itemsPerPage,
		s.repo.GetPaginated,
		func(ctx context.Context) (int, error) {
			return s.repo.Count(ctx, model.EventLocationCriteria{Deleted: &deleted})
		},
	)
}

// Create requires both parents to exist and not be soft-deleted: an offering
// never exists without its Event and Location.
func (s *EventLocationServiceImpl) Create(ctx context.Context, el *model.EventLocation) (*model.EventLocation, error) {
	if el.Name == "" || el.Price < 0 {
		return nil, apperrors.ErrInvalidInput
	}

	event, err := s.eventRepo.FindByID(ctx, el.EventID)
	if err != nil {
		return nil, err
	}
	if event.Deleted {
		return nil, apperrors.ErrEventNotFound
	}

	location, err := s.locationRepo.FindByID(ctx, el.LocationID)
	if err != nil {
		return nil, err
	}
	if location.Deleted {
		return nil, apperrors.ErrLocationNotFound
	}

	if el.EventLocationID == uuid.Nil {
		el.EventLocationID = uuid.New()
	}
	return s.repo.Create(ctx, el)
}

func (s *EventLocationServiceImpl) Update(ctx context.Context, id int, params model.UpdateEventLocationParams) (*model.EventLocation, error) {
	if params.Price != nil && *params.Price < 0 {
		return nil, apperrors.ErrInvalidInput
	}

	if params.EventID != nil {
		if _, err := s.eventRepo.FindByID(ctx, *params.EventID); err != nil {
			return nil, err
		}
	}
	if params.LocationID != nil {
		if _, err := s.locationRepo.FindByID(ctx, *params.LocationID); err != nil {
			return nil, err
		}
	}

	return s.repo.Update(ctx, id, params)
}

func (s *EventLocationServiceImpl) Delete(ctx context.Context, id int) error {
	return s.repo.SoftDelete(ctx, id)
}

func (s *EventLocationServiceImpl) Restore(ctx context.Context, id int) error {
	return s.repo.Restore(ctx, id)
}

func (s *EventLocationServiceImpl) Activate(ctx context.Context, id int) error {
	return s.repo.Activate(ctx, id)
}

func (s *EventLocationServiceImpl) Deactivate(ctx context.Context, id int) error {
	return s.repo.Deactivate(ctx, id)
}

func (s *EventLocationServiceImpl) IsAvailable(ctx context.Context, id int) (*model.EventLocation, error) {
	el, err := s.repo.FindAvailable(ctx, id, time.Now().UTC())
	if err == nil {
		return el, nil
	}
	if !errors.Is(err, apperrors.ErrEventLocationUnavailable) {
		return nil, err
	}

	// The join collapses "missing" and "unavailable" into zero rows; a second
	// lookup by id tells the two apart.
	if _, findErr := s.repo.FindByID(ctx, id); findErr != nil {
		if errors.Is(findErr, apperrors.ErrEventLocationNotFound) {
			return nil, apperrors.ErrEventLocationNotFound
		}
		return nil, findErr
	}
	return nil, apperrors.ErrEventLocationUnavailable
}
