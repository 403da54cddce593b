package mocks

import (
	"context"

	"event-booking-api/internal/model"

	"github.com/stretchr/testify/mock"
)

type LocationRepositoryMock struct {
	mock.Mock
}

func NewLocationRepositoryMock() *LocationRepositoryMock {
	return &LocationRepositoryMock{}
}

func (m *LocationRepositoryMock) Create(ctx context.Context, location *model.Location) (*model.Location, error) {
	args := m.Called(ctx, location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Location), args.Error(1)
}

func (m *LocationRepositoryMock) FindAll(ctx context.Context) ([]*model.Location, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Location), args.Error(1)
}

func (m *LocationRepositoryMock) FindByID(ctx context.Context, id int) (*model.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Location), args.Error(1)
}

func (m *LocationRepositoryMock) FindByCriteria(ctx context.Context, criteria model.LocationCriteria) ([]*model.Location, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Location), args.Error(1)
}

func (m *LocationRepositoryMock) Update(ctx context.Context, id int, params model.UpdateLocationParams) (*model.Location, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Location), args.Error(1)
}

func (m *LocationRepositoryMock) SoftDelete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *LocationRepositoryMock) Restore(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *LocationRepositoryMock) Activate(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *LocationRepositoryMock) Deactivate(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *LocationRepositoryMock) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *LocationRepositoryMock) Count(ctx context.Context, criteria model.LocationCriteria) (int, error) {
	args := m.Called(ctx, criteria)
	return args.Int(0), args.Error(1)
}

func (m *LocationRepositoryMock) GetPaginated(ctx context.Context, limit, offset int) ([]*model.Location, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Location), args.Error(1)
}

func (m *LocationRepositoryMock) FindByName(ctx context.Context, name string) (*model.Location, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Location), args.Error(1)
}

func (m *LocationRepositoryMock) ListActive(ctx context.Context) ([]*model.Location, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Location), args.Error(1)
}
