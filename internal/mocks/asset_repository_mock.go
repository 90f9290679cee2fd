package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"continuum-server/internal/models"
	"continuum-server/internal/repository"
)

// MockAssetRepository is a mock type for the AssetRepository type
type MockAssetRepository struct {
	mock.Mock
}

// List provides a mock function with given fields: ctx, filter
func (_m *MockAssetRepository) List(ctx context.Context, filter repository.AssetFilter) ([]models.Asset, error) {
	ret := _m.Called(ctx, filter)

	var r0 []models.Asset
	if rf, ok := ret.Get(0).(func(context.Context, repository.AssetFilter) []models.Asset); ok {
		r0 = rf(ctx, filter)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]models.Asset)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, repository.AssetFilter) error); ok {
		r1 = rf(ctx, filter)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *MockAssetRepository) GetByID(ctx context.Context, id int64) (*models.Asset, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.Asset
	if rf, ok := ret.Get(0).(func(context.Context, int64) *models.Asset); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.Asset)
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

// Create provides a mock function with given fields: ctx, asset
func (_m *MockAssetRepository) Create(ctx context.Context, asset *models.Asset) error {
	ret := _m.Called(ctx, asset)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *models.Asset) error); ok {
		r0 = rf(ctx, asset)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Update provides a mock function with given fields: ctx, asset
func (_m *MockAssetRepository) Update(ctx context.Context, asset *models.Asset) error {
	ret := _m.Called(ctx, asset)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *models.Asset) error); ok {
		r0 = rf(ctx, asset)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Delete provides a mock function with given fields: ctx, id
func (_m *MockAssetRepository) Delete(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) error); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// FindVisibleByName provides a mock function with given fields: ctx, name, projectID
func (_m *MockAssetRepository) FindVisibleByName(ctx context.Context, name string, projectID int64) (*models.Asset, error) {
	ret := _m.Called(ctx, name, projectID)

	var r0 *models.Asset
	if rf, ok := ret.Get(0).(func(context.Context, string, int64) *models.Asset); ok {
		r0 = rf(ctx, name, projectID)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.Asset)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string, int64) error); ok {
		r1 = rf(ctx, name, projectID)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// FindGlobalByTypeAndName provides a mock function with given fields: ctx, assetType, name
func (_m *MockAssetRepository) FindGlobalByTypeAndName(ctx context.Context, assetType models.AssetType, name string) (*models.Asset, error) {
	ret := _m.Called(ctx, assetType, name)

	var r0 *models.Asset
	if rf, ok := ret.Get(0).(func(context.Context, models.AssetType, string) *models.Asset); ok {
		r0 = rf(ctx, assetType, name)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.Asset)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, models.AssetType, string) error); ok {
		r1 = rf(ctx, assetType, name)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockAssetRepository creates a new instance of MockAssetRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockAssetRepository(t interface {
	mock.TestingT
	Helper()
}) *MockAssetRepository {
	m := &MockAssetRepository{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ repository.AssetRepository = (*MockAssetRepository)(nil)
