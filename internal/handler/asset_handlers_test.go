package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"continuum-server/internal/models"
	"continuum-server/internal/repository"
)

func TestListAssets_Filters(t *testing.T) {
	env := newTestEnv(t)

	characterType := models.AssetTypeCharacter
	env.assets.On("List", mock.Anything, mock.MatchedBy(func(f repository.AssetFilter) bool {
		return f.ProjectID != nil && *f.ProjectID == 7 &&
			f.Type != nil && *f.Type == characterType &&
			f.IsGlobal == nil
	})).Return([]models.Asset{{ID: 1, Name: "ANNA", Type: characterType}}, nil)

	rec := env.do(t, http.MethodGet, "/api/assets?project_id=7&type=character", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var assets []models.Asset
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &assets))
	require.Len(t, assets, 1)
	assert.Equal(t, "ANNA", assets[0].Name)
}

func TestListAssets_InvalidTypeFilter(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/assets?type=spaceship", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAsset_IncludesVariants(t *testing.T) {
	env := newTestEnv(t)

	env.assets.On("GetByID", mock.Anything, int64(10)).Return(&models.Asset{
		ID: 10, Name: "ANNA", Type: models.AssetTypeCharacter,
	}, nil)
	env.variants.On("ListByAsset", mock.Anything, int64(10)).Return([]models.Variant{
		{ID: 3, Name: "Medieval", AssetID: 10},
	}, nil)

	rec := env.do(t, http.MethodGet, "/api/assets/10", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Name     string           `json:"name"`
		Variants []models.Variant `json:"variants"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ANNA", resp.Name)
	require.Len(t, resp.Variants, 1)
	assert.Equal(t, "Medieval", resp.Variants[0].Name)
}

func TestGetAsset_NotFound(t *testing.T) {
	env := newTestEnv(t)

	env.assets.On("GetByID", mock.Anything, int64(99)).Return(nil, models.ErrNotFound)

	rec := env.do(t, http.MethodGet, "/api/assets/99", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateAsset_InvalidType(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/assets", gin.H{
		"name": "THING",
		"type": "spaceship",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateVariant_MissingAssetIs404(t *testing.T) {
	env := newTestEnv(t)

	env.assets.On("GetByID", mock.Anything, int64(99)).Return(nil, models.ErrNotFound)

	rec := env.do(t, http.MethodPost, "/api/variants", gin.H{
		"name":     "Medieval",
		"asset_id": 99,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
