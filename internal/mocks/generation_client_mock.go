package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"continuum-server/internal/ai"
	"continuum-server/internal/models"
	"continuum-server/internal/service"
)

// MockGenerationClient is a mock type for the GenerationClient type
type MockGenerationClient struct {
	mock.Mock
}

// Complete provides a mock function with given fields: ctx, messages, maxTokens
func (_m *MockGenerationClient) Complete(ctx context.Context, messages []ai.Message, maxTokens int) (string, error) {
	ret := _m.Called(ctx, messages, maxTokens)

	var r0 string
	if rf, ok := ret.Get(0).(func(context.Context, []ai.Message, int) string); ok {
		r0 = rf(ctx, messages, maxTokens)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(string)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, []ai.Message, int) error); ok {
		r1 = rf(ctx, messages, maxTokens)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Enrich provides a mock function with given fields: ctx, assetType, messages, currentPrompt
func (_m *MockGenerationClient) Enrich(ctx context.Context, assetType models.AssetType, messages []ai.Message, currentPrompt string) (ai.LayeredReply, error) {
	ret := _m.Called(ctx, assetType, messages, currentPrompt)

	var r0 ai.LayeredReply
	if rf, ok := ret.Get(0).(func(context.Context, models.AssetType, []ai.Message, string) ai.LayeredReply); ok {
		r0 = rf(ctx, assetType, messages, currentPrompt)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(ai.LayeredReply)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, models.AssetType, []ai.Message, string) error); ok {
		r1 = rf(ctx, assetType, messages, currentPrompt)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// EnrichVariant provides a mock function with given fields: ctx, assetType, basePrompt, messages, currentDelta
func (_m *MockGenerationClient) EnrichVariant(ctx context.Context, assetType models.AssetType, basePrompt string, messages []ai.Message, currentDelta string) (ai.LayeredReply, error) {
	ret := _m.Called(ctx, assetType, basePrompt, messages, currentDelta)

	var r0 ai.LayeredReply
	if rf, ok := ret.Get(0).(func(context.Context, models.AssetType, string, []ai.Message, string) ai.LayeredReply); ok {
		r0 = rf(ctx, assetType, basePrompt, messages, currentDelta)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(ai.LayeredReply)
		}
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, models.AssetType, string, []ai.Message, string) error); ok {
		r1 = rf(ctx, assetType, basePrompt, messages, currentDelta)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Provider provides a mock function with given fields:
func (_m *MockGenerationClient) Provider() string {
	ret := _m.Called()

	var r0 string
	if rf, ok := ret.Get(0).(func() string); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(string)
		}
	}

	return r0
}

// Model provides a mock function with given fields:
func (_m *MockGenerationClient) Model() string {
	ret := _m.Called()

	var r0 string
	if rf, ok := ret.Get(0).(func() string); ok {
		r0 = rf()
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(string)
		}
	}

	return r0
}

// NewMockGenerationClient creates a new instance of MockGenerationClient. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockGenerationClient(t interface {
	mock.TestingT
	Helper()
}) *MockGenerationClient {
	m := &MockGenerationClient{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ service.GenerationClient = (*MockGenerationClient)(nil)

// MockClientProvider is a mock type for the ClientProvider type
type MockClientProvider struct {
	mock.Mock
}

// Client provides a mock function with given fields: ctx
func (_m *MockClientProvider) Client(ctx context.Context) (service.GenerationClient, error) {
	ret := _m.Called(ctx)

	var r0 service.GenerationClient
	if rf, ok := ret.Get(0).(func(context.Context) service.GenerationClient); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(service.GenerationClient)
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

// NewMockClientProvider creates a new instance of MockClientProvider. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockClientProvider(t interface {
	mock.TestingT
	Helper()
}) *MockClientProvider {
	m := &MockClientProvider{}
	m.Mock.Test(t)
	t.Helper()
	return m
}

var _ service.ClientProvider = (*MockClientProvider)(nil)
