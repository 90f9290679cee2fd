package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"continuum-server/internal/repository"
)

// MockSettingsRepository is a mock type for the SettingsRepository type
type MockSettingsRepository struct {
	mock.Mock
}

// GetValue provides a mock function with given fields: ctx, key
func (_m *MockSettingsRepository) GetValue(ctx context.Context, key string) (string, error) {
	ret := _m.Called(ctx, key)

	var r0 string
	if rf, ok := ret.Get(0).(func(context.Context, string) string); ok {
		r0 = rf(ctx, key)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(string)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, key)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Upsert provides a mock function with given fields: ctx, key, value
func (_m *MockSettingsRepository) Upsert(ctx context.Context, key string, value string) error {
	ret := _m.Called(ctx, key, value)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, string, string) error); ok {
		r0 = rf(ctx, key, value)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// NewMockSettingsRepository creates a new instance of MockSettingsRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockSettingsRepository(t interface {
	mock.TestingT
	Helper()
}) *MockSettingsRepository {
	m := &MockSettingsRepository{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ repository.SettingsRepository = (*MockSettingsRepository)(nil)
