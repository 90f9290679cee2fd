package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"continuum-server/internal/models"
	"continuum-server/internal/service"
)

// MockSceneAggregator is a mock type for the SceneAggregator type
type MockSceneAggregator struct {
	mock.Mock
}

// Aggregate provides a mock function with given fields: ctx, scene, styleOverrideID
func (_m *MockSceneAggregator) Aggregate(ctx context.Context, scene *models.Scene, styleOverrideID *int64) (*service.SceneContext, error) {
	ret := _m.Called(ctx, scene, styleOverrideID)

	var r0 *service.SceneContext
	if rf, ok := ret.Get(0).(func(context.Context, *models.Scene, *int64) *service.SceneContext); ok {
		r0 = rf(ctx, scene, styleOverrideID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*service.SceneContext)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *models.Scene, *int64) error); ok {
		r1 = rf(ctx, scene, styleOverrideID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockSceneAggregator creates a new instance of MockSceneAggregator. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockSceneAggregator(t interface {
	mock.TestingT
	Helper()
}) *MockSceneAggregator {
	m := &MockSceneAggregator{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ service.SceneAggregator = (*MockSceneAggregator)(nil)

// MockSceneAssembler is a mock type for the SceneAssembler type
type MockSceneAssembler struct {
	mock.Mock
}

// AssembleScene provides a mock function with given fields: ctx, sceneCtx, presetName
func (_m *MockSceneAssembler) AssembleScene(ctx context.Context, sceneCtx *service.SceneContext, presetName string) (string, error) {
	ret := _m.Called(ctx, sceneCtx, presetName)

	var r0 string
	if rf, ok := ret.Get(0).(func(context.Context, *service.SceneContext, string) string); ok {
		r0 = rf(ctx, sceneCtx, presetName)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(string)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, *service.SceneContext, string) error); ok {
		r1 = rf(ctx, sceneCtx, presetName)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockSceneAssembler creates a new instance of MockSceneAssembler. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockSceneAssembler(t interface {
	mock.TestingT
	Helper()
}) *MockSceneAssembler {
	m := &MockSceneAssembler{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ service.SceneAssembler = (*MockSceneAssembler)(nil)
