package mocks

import (
	"context"
	"time"

	"event-booking-api/internal/model"

	"github.com/stretchr/testify/mock"
)

type EventLocationRepositoryMock struct {
	mock.Mock
}

func NewEventLocationRepositoryMock() *EventLocationRepositoryMock {
	return &EventLocationRepositoryMock{}
}

func (m *EventLocationRepositoryMock) Create(ctx context.Context, el *model.EventLocation) (*model.EventLocation, error) {
	args := m.Called(ctx, el)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.EventLocation), args.Error(1)
}

func (m *EventLocationRepositoryMock) FindAll(ctx context.Context) ([]*model.EventLocation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.EventLocation), args.Error(1)
}

func (m *EventLocationRepositoryMock) FindByID(ctx context.Context, id int) (*model.EventLocation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.EventLocation), args.Error(1)
}

func (m *EventLocationRepositoryMock) FindByCriteria(ctx context.Context, criteria model.EventLocationCriteria) ([]*model.EventLocation, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.EventLocation), args.Error(1)
}

func (m *EventLocationRepositoryMock) Update(ctx context.Context, id int, params model.UpdateEventLocationParams) (*model.EventLocation, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.EventLocation), args.Error(1)
}

func (m *EventLocationRepositoryMock) SoftDelete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *EventLocationRepositoryMock) Restore(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *EventLocationRepositoryMock) Activate(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *EventLocationRepositoryMock) Deactivate(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *EventLocationRepositoryMock) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *EventLocationRepositoryMock) Count(ctx context.Context, criteria model.EventLocationCriteria) (int, error) {
	args := m.Called(ctx, criteria)
	return args.Int(0), args.Error(1)
}

func (m *EventLocationRepositoryMock) GetPaginated(ctx context.Context, limit, offset int) ([]*model.EventLocation, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.EventLocation), args.Error(1)
}

func (m *EventLocationRepositoryMock) ListByEvent(ctx context.Context, eventID int) ([]*model.EventLocation, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.EventLocation), args.Error(1)
}

func (m *EventLocationRepositoryMock) ListByLocation(ctx context.Context, locationID int) ([]*model.EventLocation, error) {
	args := m.Called(ctx, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.EventLocation), args.Error(1)
}

func (m *EventLocationRepositoryMock) ListActiveByEvent(ctx context.Context, eventID int) ([]*model.EventLocation, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.EventLocation), args.Error(1)
}

func (m *EventLocationRepositoryMock) FindAvailable(ctx context.Context, id int, now time.Time) (*model.EventLocation, error) {
	args := m.Called(ctx, id, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.EventLocation), args.Error(1)
}
