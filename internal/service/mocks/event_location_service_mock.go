package mocks

import (
	"context"

	"event-booking-api/internal/model"

	"github.com/stretchr/testify/mock"
)

type EventLocationServiceMock struct {
	mock.Mock
}

func NewEventLocationServiceMock() *EventLocationServiceMock {
	return &EventLocationServiceMock{}
}

func (m *EventLocationServiceMock) GetAll(ctx context.Context) ([]*model.EventLocation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.EventLocation), args.Error(1)
}

func (m *EventLocationServiceMock) GetByID(ctx context.Context, id int) (*model.EventLocation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.EventLocation), args.Error(1)
}

func (m *EventLocationServiceMock) GetByEvent(ctx context.Context, eventID int) ([]*model.EventLocation, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.EventLocation), args.Error(1)
}

func (m *EventLocationServiceMock) GetByLocation(ctx context.Context, locationID int) ([]*model.EventLocation, error) {
	args := m.Called(ctx, locationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.EventLocation), args.Error(1)
}

func (m *EventLocationServiceMock) GetActiveByEvent(ctx context.Context, eventID int) ([]*model.EventLocation, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.EventLocation), args.Error(1)
}

func (m *EventLocationServiceMock) GetPaginated(ctx context.Context, page, itemsPerPage int) (*model.PaginatedResult[model.EventLocation], error) {
	args := m.Called(ctx, page, itemsPerPage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PaginatedResult[model.EventLocation]), args.Error(1)
}

func (m *EventLocationServiceMock) Create(ctx context.Context, el *model.EventLocation) (*model.EventLocation, error) {
	args := m.Called(ctx, el)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.EventLocation), args.Error(1)
}

func (m *EventLocationServiceMock) Update(ctx context.Context, id int, params model.UpdateEventLocationParams) (*model.EventLocation, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.EventLocation), args.Error(1)
}

func (m *EventLocationServiceMock) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *EventLocationServiceMock) Restore(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *EventLocationServiceMock) Activate(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *EventLocationServiceMock) Deactivate(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *EventLocationServiceMock) IsAvailable(ctx context.Context, id int) (*model.EventLocation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.EventLocation), args.Error(1)
}
