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

type EventService interface {
	GetAll(ctx context.Context) ([]*model.Event, error)
	GetActive(ctx context.Context) ([]*model.Event, error)
	GetByID(ctx context.Context, id int) (*model.Event, error)
	GetByName(ctx context.Context, name string) (*model.Event, error)
	GetByStartDate(ctx context.Context, date time.Time) ([]*model.Event, error)
	GetBySaleStart(ctx context.Context, date time.Time) ([]*model.Event, error)
	GetPaginated(ctx context.Context, page, itemsPerPage int) (*model.PaginatedResult[model.Event], error)
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	Update(ctx context.Context, id int, params model.UpdateEventParams) (*model.Event, error)
	Delete(ctx context.Context, id int) error
	Restore(ctx context.Context, id int) error
	Activate(ctx context.Context, id int) error
	Deactivate(ctx context.Context, id int) error
}

type EventServiceImpl struct {
	repo repository.EventRepository
}

func NewEventService(repo repository.EventRepository) EventService {
	return &EventServiceImpl{repo: repo}
}

func (s *EventServiceImpl) GetAll(ctx context.Context) ([]*model.Event, error) {
	return s.repo.FindAll(ctx)
}

func (s *EventServiceImpl) GetActive(ctx context.Context) ([]*model.Event, error) {
	return s.repo.ListActive(ctx)
}

func (s *EventServiceImpl) GetByID(ctx context.Context, id int) (*model.Event, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *EventServiceImpl) GetByName(ctx context.Context, name string) (*model.Event, error) {
	return s.repo.FindByName(ctx, name)
}

func (s *EventServiceImpl) GetByStartDate(ctx context.Context, date time.Time) ([]*model.Event, error) {
	return s.repo.ListByStartDate(ctx, date)
}

func (s *EventServiceImpl) GetBySaleStart(ctx context.Context, date time.Time) ([]*model.Event, error) {
	return s.repo.ListBySaleStart(ctx, date)
}

func (s *EventServiceImpl) GetPaginated(ctx context.Context, page, itemsPerPage int) (*model.PaginatedResult[model.Event], error) {
	deleted := false
	return Paginate(ctx, page, itemsPerPage,
		s.repo.GetPaginated,
		func(ctx context.Context) (int, error) {
			return s.repo.Count(ctx, model.EventCriteria{Deleted: &deleted})
		},
	)
}

// Create rejects duplicate names with a pre-check before inserting. Two
// concurrent creates can both pass the pre-check; the unique index on
// events.name catches that race and the repository maps it to the same
// ErrEventNameTaken.
func (s *EventServiceImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	if event.Name == "" {
		return nil, apperrors.ErrInvalidInput
	}
	if event.SaleStart.After(event.SaleEnd) {
		return nil, apperrors.ErrInvalidSaleWindow
	}

	_, err := s.repo.FindByName(ctx, event.Name)
	if err == nil {
		return nil, apperrors.ErrEventNameTaken
	}
	if !errors.Is(err, apperrors.ErrEventNotFound) {
		return nil, err
	}

	if event.EventID == uuid.Nil {
		event.EventID = uuid.New()
	}
	return s.repo.Create(ctx, event)
}

func (s *EventServiceImpl) Update(ctx context.Context, id int, params model.UpdateEventParams) (*model.Event, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Validate the sale window against the merged row, not just the patch.
	saleStart := event.SaleStart
	if params.SaleStart != nil {
		saleStart = *params.SaleStart
	}
	saleEnd := event.SaleEnd
	if params.SaleEnd != nil {
		saleEnd = *params.SaleEnd
	}
	if saleStart.After(saleEnd) {
		return nil, apperrors.ErrInvalidSaleWindow
	}

	return s.repo.Update(ctx, id, params)
}

// Delete is a soft delete; the row and its offerings stay in place.
func (s *EventServiceImpl) Delete(ctx context.Context, id int) error {
	return s.repo.SoftDelete(ctx, id)
}

func (s *EventServiceImpl) Restore(ctx context.Context, id int) error {
	return s.repo.Restore(ctx, id)
}

func (s *EventServiceImpl) Activate(ctx context.Context, id int) error {
	return s.repo.Activate(ctx, id)
}

func (s *EventServiceImpl) Deactivate(ctx context.Context, id int) error {
	return s.repo.Deactivate(ctx, id)
}
