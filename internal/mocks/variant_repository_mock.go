package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"continuum-server/internal/models"
	"continuum-server/internal/repository"
)

// MockVariantRepository is a mock type for the VariantRepository type
type MockVariantRepository struct {
	mock.Mock
}

// ListByAsset provides a mock function with given fields: ctx, assetID
func (_m *MockVariantRepository) ListByAsset(ctx context.Context, assetID int64) ([]models.Variant, error) {
	ret := _m.Called(ctx, assetID)

	var r0 []models.Variant
	if rf, ok := ret.Get(0).(func(context.Context, int64) []models.Variant); ok {
		r0 = rf(ctx, assetID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]models.Variant)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, assetID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *MockVariantRepository) GetByID(ctx context.Context, id int64) (*models.Variant, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Variant
	if rf, ok := ret.Get(0).(func(context.Context, int64) *models.Variant); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.Variant)
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

// Create provides a mock function with given fields: ctx, variant
func (_m *MockVariantRepository) Create(ctx context.Context, variant *models.Variant) error {
	ret := _m.Called(ctx, variant)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *models.Variant) error); ok {
		r0 = rf(ctx, variant)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Update provides a mock function with given fields: ctx, variant
func (_m *MockVariantRepository) Update(ctx context.Context, variant *models.Variant) error {
	ret := _m.Called(ctx, variant)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *models.Variant) error); ok {
		r0 = rf(ctx, variant)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Delete provides a mock function with given fields: ctx, id
func (_m *MockVariantRepository) Delete(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) error); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// FindByName provides a mock function with given fields: ctx, assetID, name
func (_m *MockVariantRepository) FindByName(ctx context.Context, assetID int64, name string) (*models.Variant, error) {
	ret := _m.Called(ctx, assetID, name)

	var r0 *models.Variant
	if rf, ok := ret.Get(0).(func(context.Context, int64, string) *models.Variant); ok {
		r0 = rf(ctx, assetID, name)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.Variant)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, int64, string) error); ok {
		r1 = rf(ctx, assetID, name)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockVariantRepository creates a new instance of MockVariantRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockVariantRepository(t interface {
	mock.TestingT
	Helper()
}) *MockVariantRepository {
	m := &MockVariantRepository{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ repository.VariantRepository = (*MockVariantRepository)(nil)
