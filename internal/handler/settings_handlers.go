package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"continuum-server/internal/ai"
	"continuum-server/internal/models"
)

// maskAPIKey прячет середину ключа. Короткие и пустые значения маскируются
// целиком, чтобы не выдать даже длину.
func maskAPIKey(key string) string {
	if len(key) < 8 {
		return "***"
	}
	return key[:4] + "****" + key[len(key)-4:]
}

// readSettings собирает значения LLM настроек, маскируя ключ API.
func (h *Handler) readSettings(ctx context.Context) (settingsResponse, error) {
	var resp settingsResponse
	targets := map[string]*string{
		ai.SettingKeyProvider: &resp.LLMProvider,
		ai.SettingKeyAPIKey:   &resp.LLMAPIKey,
		ai.SettingKeyModel:    &resp.LLMModel,
		ai.SettingKeyBaseURL:  &resp.LLMBaseURL,
	}
	for key, target := range targets {
		value, err := h.settings.GetValue(ctx, key)
		if err != nil && !errors.Is(err, models.ErrNotFound) {
			return settingsResponse{}, err
		}
		*target = value
	}
	resp.LLMAPIKey = maskAPIKey(resp.LLMAPIKey)
	return resp, nil
}

func (h *Handler) getSettings(c *gin.Context) {
	resp, err := h.readSettings(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) updateSettings(c *gin.Context) {
	var req updateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	ctx := c.Request.Context()
	updates := map[string]*string{
		ai.SettingKeyProvider: req.LLMProvider,
		ai.SettingKeyAPIKey:   req.LLMAPIKey,
		ai.SettingKeyModel:    req.LLMModel,
		ai.SettingKeyBaseURL:  req.LLMBaseURL,
	}
	for key, value := range updates {
		if value == nil {
			continue
		}
		// Маскированный ключ пришел обратно из формы — настоящий не трогаем
		if key == ai.SettingKeyAPIKey && strings.Contains(*value, "****") {
			continue
		}
		if err := h.settings.Upsert(ctx, key, *value); err != nil {
			h.handleError(c, err)
			return
		}
	}

	resp, err := h.readSettings(ctx)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
