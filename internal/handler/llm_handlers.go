package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"continuum-server/internal/ai"
)

// getLLMLogs отдает последние запросы к LLM, свежие первыми.
func (h *Handler) getLLMLogs(c *gin.Context) {
	entries := h.llmLogs.Snapshot()

	logs := make([]llmLogEntry, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		entry := entries[i]
		logs = append(logs, llmLogEntry{
			Timestamp:        entry.Timestamp.Format(time.RFC3339),
			Provider:         entry.Provider,
			Model:            entry.Model,
			InputTokens:      entry.InputTokens,
			OutputTokens:     entry.OutputTokens,
			GenerationTimeMs: entry.GenerationTimeMs,
			TokensPerSecond:  entry.TokensPerSecond(),
			Status:           entry.Status,
			ErrorMessage:     entry.ErrorMessage,
		})
	}
	c.JSON(http.StatusOK, llmLogsResponse{Logs: logs})
}

// testLLMConnection проверяет связь с провайдером коротким запросом. Сбой —
// это валидный результат проверки, поэтому ответ всегда 200.
func (h *Handler) testLLMConnection(c *gin.Context) {
	ctx := c.Request.Context()

	client, err := h.clients.Client(ctx)
	if err != nil {
		c.JSON(http.StatusOK, testConnectionResponse{Success: false, Message: err.Error()})
		return
	}

	message, err := client.Complete(ctx, []ai.Message{
		{Role: "user", Content: "Say 'OK' if you can read this."},
	}, 10)
	if err != nil {
		c.JSON(http.StatusOK, testConnectionResponse{Success: false, Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, testConnectionResponse{
		Success: true,
		Message: strings.TrimSpace(message),
		Model:   client.Model(),
	})
}

func (h *Handler) enrichAsset(c *gin.Context) {
	var req enrichRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if !req.AssetType.IsValid() {
		c.AbortWithStatusJSON(http.StatusBadRequest, APIError{Message: "invalid asset type"})
		return
	}

	ctx := c.Request.Context()
	client, err := h.clients.Client(ctx)
	if err != nil {
		h.handleError(c, err)
		return
	}

	reply, err := client.Enrich(ctx, req.AssetType, toAIMessages(req.Messages), req.CurrentPrompt)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, enrichResponse{
		Layers:           reply.Layers,
		OutfitSuggestion: reply.OutfitSuggestion,
	})
}

func (h *Handler) enrichVariant(c *gin.Context) {
	var req enrichVariantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if !req.AssetType.IsValid() {
		c.AbortWithStatusJSON(http.StatusBadRequest, APIError{Message: "invalid asset type"})
		return
	}

	ctx := c.Request.Context()
	client, err := h.clients.Client(ctx)
	if err != nil {
		h.handleError(c, err)
		return
	}

	reply, err := client.EnrichVariant(ctx, req.AssetType, req.BasePrompt, toAIMessages(req.Messages), req.CurrentDelta)
	if err != nil {
		h.handleError(c, err)
		return
	}
	// Для варианта outfit_suggestion не возвращается: дельта сама по себе
	// и есть вариация внешнего вида
	c.JSON(http.StatusOK, enrichResponse{Layers: reply.Layers})
}

func toAIMessages(messages []chatMessage) []ai.Message {
	out := make([]ai.Message, 0, len(messages))
	for _, m := range messages {
		out = append(out, ai.Message{Role: m.Role, Content: m.Content})
	}
	return out
}
