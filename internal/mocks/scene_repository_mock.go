package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"continuum-server/internal/models"
	"continuum-server/internal/repository"
)

// MockSceneRepository is a mock type for the SceneRepository type
type MockSceneRepository struct {
	mock.Mock
}

// List provides a mock function with given fields: ctx, projectID
func (_m *MockSceneRepository) List(ctx context.Context, projectID *int64) ([]models.Scene, error) {
	ret := _m.Called(ctx, projectID)

	var r0 []models.Scene
	if rf, ok := ret.Get(0).(func(context.Context, *int64) []models.Scene); ok {
		r0 = rf(ctx, projectID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]models.Scene)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *int64) error); ok {
		r1 = rf(ctx, projectID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *MockSceneRepository) GetByID(ctx context.Context, id int64) (*models.Scene, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Scene
	if rf, ok := ret.Get(0).(func(context.Context, int64) *models.Scene); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.Scene)
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

// Create provides a mock function with given fields: ctx, scene
func (_m *MockSceneRepository) Create(ctx context.Context, scene *models.Scene) error {
	ret := _m.Called(ctx, scene)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *models.Scene) error); ok {
		r0 = rf(ctx, scene)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Update provides a mock function with given fields: ctx, scene
func (_m *MockSceneRepository) Update(ctx context.Context, scene *models.Scene) error {
	ret := _m.Called(ctx, scene)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *models.Scene) error); ok {
		r0 = rf(ctx, scene)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Delete provides a mock function with given fields: ctx, id
func (_m *MockSceneRepository) Delete(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) error); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewMockSceneRepository creates a new instance of MockSceneRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockSceneRepository(t interface {
	mock.TestingT
	Helper()
}) *MockSceneRepository {
	m := &MockSceneRepository{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ repository.SceneRepository = (*MockSceneRepository)(nil)
