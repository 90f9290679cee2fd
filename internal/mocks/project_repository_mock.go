package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"continuum-server/internal/models"
	"continuum-server/internal/repository"
)

// MockProjectRepository is a mock type for the ProjectRepository type
type MockProjectRepository struct {
	mock.Mock
}

// List provides a mock function with given fields: ctx
func (_m *MockProjectRepository) List(ctx context.Context) ([]models.Project, error) {
	ret := _m.Called(ctx)

	var r0 []models.Project
	if rf, ok := ret.Get(0).(func(context.Context) []models.Project); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]models.Project)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *MockProjectRepository) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Project
	if rf, ok := ret.Get(0).(func(context.Context, int64) *models.Project); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.Project)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Create provides a mock function with given fields: ctx, project
func (_m *MockProjectRepository) Create(ctx context.Context, project *models.Project) error {
	ret := _m.Called(ctx, project)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *models.Project) error); ok {
		r0 = rf(ctx, project)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Update provides a mock function with given fields: ctx, project
func (_m *MockProjectRepository) Update(ctx context.Context, project *models.Project) error {
	ret := _m.Called(ctx, project)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *models.Project) error); ok {
		r0 = rf(ctx, project)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Delete provides a mock function with given fields: ctx, id
func (_m *MockProjectRepository) Delete(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) error); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewMockProjectRepository creates a new instance of MockProjectRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockProjectRepository(t interface {
	mock.TestingT
	Helper()
}) *MockProjectRepository {
	m := &MockProjectRepository{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ repository.ProjectRepository = (*MockProjectRepository)(nil)
