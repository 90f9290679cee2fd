package handler

import (
	"continuum-server/internal/models"
	"continuum-server/internal/prompt"
)

// --- Проекты ---

type createProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type updateProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// --- Ассеты ---

type createAssetRequest struct {
	Name       string           `json:"name" binding:"required"`
	Type       models.AssetType `json:"type" binding:"required"`
	BasePrompt string           `json:"base_prompt"`
	IsGlobal   bool             `json:"is_global"`
	ProjectID  *int64           `json:"project_id"`
}

type updateAssetRequest struct {
	Name       *string `json:"name"`
	BasePrompt *string `json:"base_prompt"`
}

// assetDetailResponse — ассет вместе с его вариантами.
type assetDetailResponse struct {
	models.Asset
	Variants []models.Variant `json:"variants"`
}

// --- Варианты ---

type createVariantRequest struct {
	Name        string `json:"name" binding:"required"`
	DeltaPrompt string `json:"delta_prompt"`
	AssetID     int64  `json:"asset_id" binding:"required"`
}

type updateVariantRequest struct {
	Name        *string `json:"name"`
	DeltaPrompt *string `json:"delta_prompt"`
}

// --- Сцены ---

type createSceneRequest struct {
	Name       string `json:"name" binding:"required"`
	ActionText string `json:"action_text"`
	ProjectID  int64  `json:"project_id" binding:"required"`
	ShotTypeID *int64 `json:"shot_type_id"`
	StyleID    *int64 `json:"style_id"`
	LightingID *int64 `json:"lighting_id"`
}

type updateSceneRequest struct {
	Name       *string `json:"name"`
	ActionText *string `json:"action_text"`
	ShotTypeID *int64  `json:"shot_type_id"`
	StyleID    *int64  `json:"style_id"`
	LightingID *int64  `json:"lighting_id"`
}

type generatePromptRequest struct {
	StyleID    *int64 `json:"style_id"`
	LightingID *int64 `json:"lighting_id"`
}

// --- Настройки ---

type settingsResponse struct {
	LLMProvider string `json:"llm_provider"`
	LLMAPIKey   string `json:"llm_api_key"` // в ответе всегда маскирован
	LLMModel    string `json:"llm_model"`
	LLMBaseURL  string `json:"llm_base_url"`
}

type updateSettingsRequest struct {
	LLMProvider *string `json:"llm_provider"`
	LLMAPIKey   *string `json:"llm_api_key"`
	LLMModel    *string `json:"llm_model"`
	LLMBaseURL  *string `json:"llm_base_url"`
}

// --- LLM ---

type chatMessage struct {
	Role    string `json:"role" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type enrichRequest struct {
	AssetType     models.AssetType `json:"asset_type" binding:"required"`
	Messages      []chatMessage    `json:"messages" binding:"required"`
	CurrentPrompt string           `json:"current_prompt"`
}

type enrichVariantRequest struct {
	AssetType    models.AssetType `json:"asset_type" binding:"required"`
	BasePrompt   string           `json:"base_prompt"`
	Messages     []chatMessage    `json:"messages" binding:"required"`
	CurrentDelta string           `json:"current_delta"`
}

type enrichResponse struct {
	Layers           prompt.LayeredPrompt  `json:"layers"`
	OutfitSuggestion *prompt.LayeredPrompt `json:"outfit_suggestion,omitempty"`
}

type llmLogsResponse struct {
	Logs []llmLogEntry `json:"logs"`
}

type llmLogEntry struct {
	Timestamp        string  `json:"timestamp"`
	Provider         string  `json:"provider"`
	Model            string  `json:"model"`
	InputTokens      int     `json:"input_tokens"`
	OutputTokens     int     `json:"output_tokens"`
	GenerationTimeMs int64   `json:"generation_time_ms"`
	TokensPerSecond  float64 `json:"tokens_per_second"`
	Status           string  `json:"status"`
	ErrorMessage     string  `json:"error_message,omitempty"`
}

type testConnectionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Model   string `json:"model,omitempty"`
}
