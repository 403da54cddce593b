package mocks

import (
	"context"

	"event-booking-api/internal/model"

	"github.com/stretchr/testify/mock"
)

type LocationServiceMock struct {
	mock.Mock
}

func NewLocationServiceMock() *LocationServiceMock {
	return &LocationServiceMock{}
}

func (m *LocationServiceMock) GetAll(ctx context.Context) ([]*model.Location, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Location), args.Error(1)
}

func (m *LocationServiceMock) GetActive(ctx context.Context) ([]*model.Location, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Location), args.Error(1)
}

func (m *LocationServiceMock) GetByID(ctx context.Context, id int) (*model.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Location), args.Error(1)
}

func (m *LocationServiceMock) GetByName(ctx context.Context, name string) (*model.Location, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Location), args.Error(1)
}

func (m *LocationServiceMock) GetPaginated(ctx context.Context, page, itemsPerPage int) (*model.PaginatedResult[model.Location], error) {
	args := m.Called(ctx, page, itemsPerPage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PaginatedResult[model.Location]), args.Error(1)
}

func (m *LocationServiceMock) Create(ctx context.Context, location *model.Location) (*model.Location, error) {
	args := m.Called(ctx, location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Location), args.Error(1)
}

func (m *LocationServiceMock) Update(ctx context.Context, id int, params model.UpdateLocationParams) (*model.Location, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Location), args.Error(1)
}

func (m *LocationServiceMock) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *LocationServiceMock) Restore(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *LocationServiceMock) Activate(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *LocationServiceMock) Deactivate(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
