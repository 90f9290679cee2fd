package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"continuum-server/internal/models"
)

var (
	// ErrGenerationFailed — единая ошибка для любых транспортных/сервисных
	// сбоев генерации. Исходная ошибка заворачивается, чтобы вызывающий
	// обрабатывал все сбои генерации одинаково.
	ErrGenerationFailed = errors.New("llm generation failed")

	// ErrMalformedReply — генератор ответил, но без валидной структуры.
	// Отличается от транспортных сбоев: "модель сломалась" vs "сеть упала".
	ErrMalformedReply = errors.New("llm reply is not valid layered JSON")

	// ErrNotConfigured — клиент нельзя построить: нет ключа API для
	// провайдера, которому он обязателен. Сигналится до любого сетевого вызова.
	ErrNotConfigured = errors.New("llm api key not configured")
)

// Ключи настроек, которые читает конструктор клиента.
const (
	SettingKeyProvider = "llm_provider"
	SettingKeyAPIKey   = "llm_api_key"
	SettingKeyModel    = "llm_model"
	SettingKeyBaseURL  = "llm_base_url"
)

// Провайдеры, работающие без ключа API (локальные OpenAI-совместимые серверы).
var credentialOptionalProviders = map[string]bool{
	"lmstudio": true,
}

// Message — одна реплика диалога с генератором.
type Message struct {
	Role    string `json:"role"` // "system", "user" или "assistant"
	Content string `json:"content"`
}

// SettingsReader читает значения настроек по ключу. Отсутствующий ключ —
// пустая строка, не ошибка.
type SettingsReader interface {
	GetValue(ctx context.Context, key string) (string, error)
}

// Client — тонкая обертка над chat-completion API. Каждый публичный метод
// выполняет ровно один внешний вызов, замеряет его и пишет телеметрию в
// кольцевой буфер.
type Client struct {
	api      *openai.Client
	model    string
	provider string
	logs     *RequestLogBuffer
	logger   *zap.Logger
}

// Config содержит параметры подключения к LLM-провайдеру.
type Config struct {
	BaseURL  string
	APIKey   string
	Model    string
	Provider string
}

// NewClient создает клиент для заданного провайдера.
func NewClient(cfg Config, logs *RequestLogBuffer, logger *zap.Logger) *Client {
	apiKey := cfg.APIKey
	if apiKey == "" {
		// go-openai требует непустой ключ даже для локальных серверов
		apiKey = "not-needed"
	}

	clientCfg := openai.DefaultConfig(apiKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &Client{
		api:      openai.NewClientWithConfig(clientCfg),
		model:    cfg.Model,
		provider: cfg.Provider,
		logs:     logs,
		logger:   logger.Named("AIClient"),
	}
}

// NewClientFromSettings строит клиент из значений хранилища настроек.
// Отсутствие ключа API для провайдера, которому он обязателен, — ошибка
// конфигурации, сеть при этом не трогается.
func NewClientFromSettings(ctx context.Context, settings SettingsReader, logs *RequestLogBuffer, logger *zap.Logger) (*Client, error) {
	values := make(map[string]string)
	for _, key := range []string{SettingKeyProvider, SettingKeyAPIKey, SettingKeyModel, SettingKeyBaseURL} {
		value, err := settings.GetValue(ctx, key)
		if err != nil && !errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("failed to read setting %s: %w", key, err)
		}
		values[key] = value
	}

	provider := values[SettingKeyProvider]
	if values[SettingKeyAPIKey] == "" && !credentialOptionalProviders[provider] {
		return nil, fmt.Errorf("%w (provider %q)", ErrNotConfigured, provider)
	}

	return NewClient(Config{
		BaseURL:  values[SettingKeyBaseURL],
		APIKey:   values[SettingKeyAPIKey],
		Model:    values[SettingKeyModel],
		Provider: provider,
	}, logs, logger), nil
}

// Model возвращает идентификатор модели, с которой работает клиент.
func (c *Client) Model() string {
	return c.model
}

// Provider возвращает имя провайдера, с которым работает клиент.
func (c *Client) Provider() string {
	return c.provider
}

// Complete выполняет один chat-completion вызов и возвращает текст ответа.
// maxTokens <= 0 означает "без ограничения".
func (c *Client) Complete(ctx context.Context, messages []Message, maxTokens int) (string, error) {
	return c.createCompletion(ctx, toChatMessages(messages), maxTokens)
}

// Enrich генерирует многослойное описание ассета по истории диалога.
// currentPrompt, если задан, добавляется в системный промпт как текущее
// описание для улучшения.
func (c *Client) Enrich(ctx context.Context, assetType models.AssetType, messages []Message, currentPrompt string) (LayeredReply, error) {
	systemPrompt := BuildLayeredSystemPrompt(assetType)
	if currentPrompt != "" {
		systemPrompt += fmt.Sprintf("\n\nCurrent description (improve upon this):\n%s", currentPrompt)
	}

	chatMessages := append(
		[]openai.ChatCompletionMessage{{Role: openai.ChatMessageRoleSystem, Content: systemPrompt}},
		toChatMessages(messages)...,
	)

	raw, err := c.createCompletion(ctx, chatMessages, 0)
	if err != nil {
		return LayeredReply{}, err
	}
	return ParseLayeredReply(raw)
}

// EnrichVariant генерирует дельта-описание варианта относительно базового
// описания ассета.
func (c *Client) EnrichVariant(ctx context.Context, assetType models.AssetType, basePrompt string, messages []Message, currentDelta string) (LayeredReply, error) {
	systemPrompt := BuildVariantSystemPrompt(assetType, basePrompt)
	if currentDelta != "" {
		systemPrompt += fmt.Sprintf("\n\nCurrent delta (improve upon this):\n%s", currentDelta)
	}

	chatMessages := append(
		[]openai.ChatCompletionMessage{{Role: openai.ChatMessageRoleSystem, Content: systemPrompt}},
		toChatMessages(messages)...,
	)

	raw, err := c.createCompletion(ctx, chatMessages, 0)
	if err != nil {
		return LayeredReply{}, err
	}
	return ParseLayeredReply(raw)
}

// createCompletion — единственная точка обращения к внешнему API: замер
// времени, телеметрия, метрики и унифицированное заворачивание ошибок.
func (c *Client) createCompletion(ctx context.Context, messages []openai.ChatCompletionMessage, maxTokens int) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: messages,
	}
	if maxTokens > 0 {
		req.MaxTokens = maxTokens
	}

	start := time.Now()
	resp, err := c.api.CreateChatCompletion(ctx, req)
	elapsed := time.Since(start)

	if err != nil {
		c.recordFailure(elapsed, err)
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	if len(resp.Choices) == 0 {
		err := errors.New("empty response: no choices returned")
		c.recordFailure(elapsed, err)
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	c.recordSuccess(elapsed, resp.Usage)
	return resp.Choices[0].Message.Content, nil
}

func (c *Client) recordSuccess(elapsed time.Duration, usage openai.Usage) {
	// Счетчики токенов берем из usage ответа; если провайдер их не вернул,
	// остаются нули.
	c.logs.Add(RequestLog{
		Timestamp:        time.Now(),
		Provider:         c.provider,
		Model:            c.model,
		InputTokens:      usage.PromptTokens,
		OutputTokens:     usage.CompletionTokens,
		GenerationTimeMs: elapsed.Milliseconds(),
		Status:           "success",
	})

	llmRequestsTotal.WithLabelValues(c.provider, c.model, "success").Inc()
	llmRequestDuration.WithLabelValues(c.provider, c.model).Observe(elapsed.Seconds())
	llmPromptTokens.WithLabelValues(c.provider, c.model).Observe(float64(usage.PromptTokens))
	llmCompletionTokens.WithLabelValues(c.provider, c.model).Observe(float64(usage.CompletionTokens))

	c.logger.Debug("LLM request completed",
		zap.Duration("latency", elapsed),
		zap.Int("promptTokens", usage.PromptTokens),
		zap.Int("completionTokens", usage.CompletionTokens),
	)
}

func (c *Client) recordFailure(elapsed time.Duration, cause error) {
	c.logs.Add(RequestLog{
		Timestamp:        time.Now(),
		Provider:         c.provider,
		Model:            c.model,
		GenerationTimeMs: elapsed.Milliseconds(),
		Status:           "error",
		ErrorMessage:     cause.Error(),
	})

	llmRequestsTotal.WithLabelValues(c.provider, c.model, "error").Inc()
	llmRequestDuration.WithLabelValues(c.provider, c.model).Observe(elapsed.Seconds())

	c.logger.Error("LLM request failed", zap.Duration("latency", elapsed), zap.Error(cause))
}

func toChatMessages(messages []Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		out = append(out, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}
	return out
}
