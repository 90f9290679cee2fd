package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"continuum-server/internal/ai"
	"continuum-server/internal/handler"
	"continuum-server/internal/mocks"
	"continuum-server/internal/models"
	"continuum-server/internal/service"
)

type testEnv struct {
	projects   *mocks.MockProjectRepository
	assets     *mocks.MockAssetRepository
	variants   *mocks.MockVariantRepository
	scenes     *mocks.MockSceneRepository
	settings   *mocks.MockSettingsRepository
	aggregator *mocks.MockSceneAggregator
	assembler  *mocks.MockSceneAssembler
	clients    *mocks.MockClientProvider
	llmLogs    *ai.RequestLogBuffer
	router     *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		projects:   mocks.NewMockProjectRepository(t),
		assets:     mocks.NewMockAssetRepository(t),
		variants:   mocks.NewMockVariantRepository(t),
		scenes:     mocks.NewMockSceneRepository(t),
		settings:   mocks.NewMockSettingsRepository(t),
		aggregator: mocks.NewMockSceneAggregator(t),
		assembler:  mocks.NewMockSceneAssembler(t),
		clients:    mocks.NewMockClientProvider(t),
		llmLogs:    ai.NewRequestLogBuffer(ai.DefaultRequestLogCapacity),
	}

	h := handler.NewHandler(handler.Deps{
		Projects:   env.projects,
		Assets:     env.assets,
		Variants:   env.variants,
		Scenes:     env.scenes,
		Settings:   env.settings,
		Aggregator: env.aggregator,
		Assembler:  env.assembler,
		Clients:    env.clients,
		LLMLogs:    env.llmLogs,
	}, zap.NewNop())

	env.router = gin.New()
	h.RegisterRoutes(env.router)
	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func newTestClient(t *testing.T, env *testEnv) *mocks.MockGenerationClient {
	t.Helper()
	client := mocks.NewMockGenerationClient(t)
	env.clients.On("Client", mock.Anything).Return(client, nil)
	return client
}

func int64Ptr(v int64) *int64 {
	return &v
}

func TestGenerateScenePrompt_Success(t *testing.T) {
	env := newTestEnv(t)

	scene := &models.Scene{
		ID:         5,
		Name:       "Market at dawn",
		ProjectID:  7,
		ActionText: "[ANNA] walks across [MARKT]",
		StyleID:    int64Ptr(22),
	}
	env.scenes.On("GetByID", mock.Anything, int64(5)).Return(scene, nil)

	sceneCtx := &service.SceneContext{Direction: scene.ActionText}
	// Стиль сцены используется как есть, глобальный дефолт не запрашивается
	env.aggregator.On("Aggregate", mock.Anything, scene, int64Ptr(22)).Return(sceneCtx, nil)
	env.assembler.On("AssembleScene", mock.Anything, sceneCtx, "").Return("final cinematic prompt", nil)
	env.scenes.On("Update", mock.Anything, mock.MatchedBy(func(s *models.Scene) bool {
		return s.ID == 5 && s.GeneratedPrompt == "final cinematic prompt"
	})).Return(nil)

	rec := env.do(t, http.MethodPost, "/api/scenes/5/generate", gin.H{})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "final cinematic prompt", resp["generated_prompt"])

	env.assets.AssertNotCalled(t, "FindGlobalByTypeAndName", mock.Anything, mock.Anything, mock.Anything)
}

func TestGenerateScenePrompt_FallsBackToDefaultStyle(t *testing.T) {
	env := newTestEnv(t)

	scene := &models.Scene{ID: 5, ProjectID: 7, ActionText: "empty field"}
	env.scenes.On("GetByID", mock.Anything, int64(5)).Return(scene, nil)
	env.assets.On("FindGlobalByTypeAndName", mock.Anything, models.AssetTypeStyle, "Cinematic").
		Return(&models.Asset{ID: 40, Name: "Cinematic", Type: models.AssetTypeStyle, IsGlobal: true}, nil)
	env.aggregator.On("Aggregate", mock.Anything, scene, int64Ptr(40)).
		Return(&service.SceneContext{Direction: "empty field"}, nil)
	env.assembler.On("AssembleScene", mock.Anything, mock.Anything, "").Return("prompt", nil)
	env.scenes.On("Update", mock.Anything, mock.Anything).Return(nil)

	rec := env.do(t, http.MethodPost, "/api/scenes/5/generate", gin.H{})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGenerateScenePrompt_MissingDefaultStyleIsTolerated(t *testing.T) {
	env := newTestEnv(t)

	scene := &models.Scene{ID: 5, ProjectID: 7, ActionText: "empty field"}
	env.scenes.On("GetByID", mock.Anything, int64(5)).Return(scene, nil)
	env.assets.On("FindGlobalByTypeAndName", mock.Anything, models.AssetTypeStyle, "Cinematic").
		Return(nil, models.ErrNotFound)
	env.aggregator.On("Aggregate", mock.Anything, scene, (*int64)(nil)).
		Return(&service.SceneContext{Direction: "empty field"}, nil)
	env.assembler.On("AssembleScene", mock.Anything, mock.Anything, "").Return("prompt", nil)
	env.scenes.On("Update", mock.Anything, mock.Anything).Return(nil)

	rec := env.do(t, http.MethodPost, "/api/scenes/5/generate", gin.H{})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGenerateScenePrompt_PersistsLightingOverride(t *testing.T) {
	env := newTestEnv(t)

	scene := &models.Scene{ID: 5, ProjectID: 7, ActionText: "field", StyleID: int64Ptr(22)}
	env.scenes.On("GetByID", mock.Anything, int64(5)).Return(scene, nil)
	env.aggregator.On("Aggregate", mock.Anything, mock.MatchedBy(func(s *models.Scene) bool {
		return s.LightingID != nil && *s.LightingID == 33
	}), int64Ptr(22)).Return(&service.SceneContext{}, nil)
	env.assembler.On("AssembleScene", mock.Anything, mock.Anything, "").Return("prompt", nil)
	env.scenes.On("Update", mock.Anything, mock.MatchedBy(func(s *models.Scene) bool {
		return s.LightingID != nil && *s.LightingID == 33
	})).Return(nil)

	rec := env.do(t, http.MethodPost, "/api/scenes/5/generate", gin.H{"lighting_id": 33})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGenerateScenePrompt_SceneNotFound(t *testing.T) {
	env := newTestEnv(t)

	env.scenes.On("GetByID", mock.Anything, int64(99)).Return(nil, models.ErrNotFound)

	rec := env.do(t, http.MethodPost, "/api/scenes/99/generate", gin.H{})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGenerateScenePrompt_GenerationFailureIsBadGateway(t *testing.T) {
	env := newTestEnv(t)

	scene := &models.Scene{ID: 5, ProjectID: 7, StyleID: int64Ptr(22)}
	env.scenes.On("GetByID", mock.Anything, int64(5)).Return(scene, nil)
	env.aggregator.On("Aggregate", mock.Anything, scene, int64Ptr(22)).Return(&service.SceneContext{}, nil)
	env.assembler.On("AssembleScene", mock.Anything, mock.Anything, "").Return("", ai.ErrGenerationFailed)

	rec := env.do(t, http.MethodPost, "/api/scenes/5/generate", gin.H{})
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	env.scenes.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateScene_PartialUpdate(t *testing.T) {
	env := newTestEnv(t)

	scene := &models.Scene{ID: 5, Name: "old", ActionText: "old text", ProjectID: 7}
	env.scenes.On("GetByID", mock.Anything, int64(5)).Return(scene, nil)
	env.scenes.On("Update", mock.Anything, mock.MatchedBy(func(s *models.Scene) bool {
		return s.Name == "new name" && s.ActionText == "old text"
	})).Return(nil)

	rec := env.do(t, http.MethodPut, "/api/scenes/5", gin.H{"name": "new name"})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetScene_InvalidID(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/scenes/not-a-number", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListScenes_FilterByProject(t *testing.T) {
	env := newTestEnv(t)

	env.scenes.On("List", mock.Anything, int64Ptr(7)).Return([]models.Scene{{ID: 1, ProjectID: 7}}, nil)

	rec := env.do(t, http.MethodGet, "/api/scenes?project_id=7", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var scenes []models.Scene
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &scenes))
	assert.Len(t, scenes, 1)
}
