package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"continuum-server/internal/ai"
	"continuum-server/internal/mocks"
	"continuum-server/internal/models"
	"continuum-server/internal/service"
)

func newTestAssembler(t *testing.T) (*mocks.MockGenerationClient, *mocks.MockSettingsRepository, service.SceneAssembler) {
	client := mocks.NewMockGenerationClient(t)
	provider := mocks.NewMockClientProvider(t)
	provider.On("Client", mock.Anything).Return(client, nil).Maybe()
	settings := mocks.NewMockSettingsRepository(t)
	return client, settings, service.NewAssembler(provider, settings, zap.NewNop())
}

func TestAssembler_AssembleScene_DefaultPreset(t *testing.T) {
	client, settings, assembler := newTestAssembler(t)

	settings.On("GetValue", mock.Anything, service.SettingKeyImagePreset).Return("", models.ErrNotFound)

	var captured []ai.Message
	client.On("Complete", mock.Anything, mock.Anything, 0).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).([]ai.Message)
		}).
		Return("  A cinematic wide shot of a market square at dawn.  \n", nil)

	sceneCtx := &service.SceneContext{
		Direction: "[MARKT] at dawn",
		Assets:    map[string]service.ResolvedRef{},
	}
	result, err := assembler.AssembleScene(context.Background(), sceneCtx, "")
	require.NoError(t, err)

	assert.Equal(t, "A cinematic wide shot of a market square at dawn.", result)

	require.Len(t, captured, 2)
	assert.Equal(t, "system", captured[0].Role)
	assert.Contains(t, captured[0].Content, "Maximum 300 words")
	assert.Contains(t, captured[0].Content, "Style: narrative")
	assert.Contains(t, captured[0].Content, "For this image model:")

	assert.Equal(t, "user", captured[1].Role)
	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(captured[1].Content), &payload))
	assert.Equal(t, "[MARKT] at dawn", payload["direction"])
}

func TestAssembler_AssembleScene_ExplicitPresetSkipsSettings(t *testing.T) {
	client, settings, assembler := newTestAssembler(t)

	var captured []ai.Message
	client.On("Complete", mock.Anything, mock.Anything, 0).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).([]ai.Message)
		}).
		Return("prompt", nil)

	_, err := assembler.AssembleScene(context.Background(), &service.SceneContext{}, "midjourney")
	require.NoError(t, err)

	settings.AssertNotCalled(t, "GetValue", mock.Anything, mock.Anything)
	assert.Contains(t, captured[0].Content, "Maximum 80 words")
	assert.Contains(t, captured[0].Content, "Style: keywords")
	assert.False(t, strings.Contains(captured[0].Content, "For this image model:"))
}

func TestAssembler_AssembleScene_PresetFromSettings(t *testing.T) {
	client, settings, assembler := newTestAssembler(t)

	settings.On("GetValue", mock.Anything, service.SettingKeyImagePreset).Return("stable_diffusion", nil)

	var captured []ai.Message
	client.On("Complete", mock.Anything, mock.Anything, 0).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).([]ai.Message)
		}).
		Return("prompt", nil)

	_, err := assembler.AssembleScene(context.Background(), &service.SceneContext{}, "")
	require.NoError(t, err)
	assert.Contains(t, captured[0].Content, "Maximum 75 words")
}

func TestAssembler_AssembleScene_GenerationErrorPropagates(t *testing.T) {
	client, settings, assembler := newTestAssembler(t)

	settings.On("GetValue", mock.Anything, service.SettingKeyImagePreset).Return("", models.ErrNotFound)
	client.On("Complete", mock.Anything, mock.Anything, 0).
		Return("", ai.ErrGenerationFailed)

	_, err := assembler.AssembleScene(context.Background(), &service.SceneContext{}, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, ai.ErrGenerationFailed)
}

func TestAssembler_AssembleScene_ClientConstructionError(t *testing.T) {
	provider := mocks.NewMockClientProvider(t)
	provider.On("Client", mock.Anything).Return(nil, ai.ErrNotConfigured)
	settings := mocks.NewMockSettingsRepository(t)
	assembler := service.NewAssembler(provider, settings, zap.NewNop())

	_, err := assembler.AssembleScene(context.Background(), &service.SceneContext{}, "midjourney")
	require.Error(t, err)
	assert.ErrorIs(t, err, ai.ErrNotConfigured)
}

func TestAssembler_AssembleScene_UnknownSettingValueFallsBack(t *testing.T) {
	client, settings, assembler := newTestAssembler(t)

	settings.On("GetValue", mock.Anything, service.SettingKeyImagePreset).Return("deleted_preset", nil)

	var captured []ai.Message
	client.On("Complete", mock.Anything, mock.Anything, 0).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).([]ai.Message)
		}).
		Return("prompt", nil)

	_, err := assembler.AssembleScene(context.Background(), &service.SceneContext{}, "")
	require.NoError(t, err)
	assert.Contains(t, captured[0].Content, "Maximum 300 words")
}

func TestAssembler_AssembleScene_SettingsStorageError(t *testing.T) {
	_, settings, assembler := newTestAssembler(t)

	storageErr := errors.New("connection refused")
	settings.On("GetValue", mock.Anything, service.SettingKeyImagePreset).Return("", storageErr)

	_, err := assembler.AssembleScene(context.Background(), &service.SceneContext{}, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, storageErr)
}
