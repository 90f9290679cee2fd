package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"continuum-server/internal/ai"
	"continuum-server/internal/models"
	"continuum-server/internal/repository"
)

// GenerationClient — операции LLM-клиента, нужные сервисному слою и
// обработчикам.
type GenerationClient interface {
	Complete(ctx context.Context, messages []ai.Message, maxTokens int) (string, error)
	Enrich(ctx context.Context, assetType models.AssetType, messages []ai.Message, currentPrompt string) (ai.LayeredReply, error)
	EnrichVariant(ctx context.Context, assetType models.AssetType, basePrompt string, messages []ai.Message, currentDelta string) (ai.LayeredReply, error)
	Provider() string
	Model() string
}

// ClientProvider создает LLM-клиент из актуальных настроек. Клиент собирается
// на каждый вызов: смена провайдера в настройках действует немедленно.
type ClientProvider interface {
	Client(ctx context.Context) (GenerationClient, error)
}

type settingsClientProvider struct {
	settings ai.SettingsReader
	logs     *ai.RequestLogBuffer
	logger   *zap.Logger
}

// NewSettingsClientProvider создает провайдер клиентов поверх настроек.
// Все клиенты пишут телеметрию в общий кольцевой буфер logs.
func NewSettingsClientProvider(settings ai.SettingsReader, logs *ai.RequestLogBuffer, logger *zap.Logger) ClientProvider {
	return &settingsClientProvider{settings: settings, logs: logs, logger: logger}
}

func (p *settingsClientProvider) Client(ctx context.Context) (GenerationClient, error) {
	client, err := ai.NewClientFromSettings(ctx, p.settings, p.logs, p.logger)
	if err != nil {
		return nil, err
	}
	return client, nil
}

const assemblySystemPrompt = `You are an expert at assembling image generation prompts.

## INPUT STRUCTURE

You receive:
1. **DIRECTION** - The main instruction with [TAGS] referencing assets (THIS IS THE PRIORITY)
2. **ASSETS** - Detailed descriptions for each referenced tag
3. **CAMERA** - Shot type and framing
4. **LIGHTING** - Light setup
5. **STYLE** - Visual style

## HOW TO READ THE DIRECTION

The DIRECTION is like a film script instruction. Tags in [BRACKETS] reference assets:
- ` + "`[NAME]`" + ` = Asset with base description only
- ` + "`[NAME:VARIANT]`" + ` = Asset with variant applied (modifies/overrides base)

Example: "[ANNA:Medieval] reads a book in [LIBRARY:Night]"
- ANNA is a CHARACTER with Medieval variant applied
- LIBRARY is a LOCATION with Night variant applied
- "reads a book" is the ACTION

**IMPORTANT:** If no CHARACTER tags appear in the direction, this is an ENVIRONMENT/ESTABLISHING shot.
Focus entirely on the location - ignore "waist-up" or similar character-focused framing.

## ASSET DETAIL LEVELS

Each asset has layers: CORE (always visible), STANDARD (medium detail), DETAIL (close-up only)

Select layers based on CAMERA:
- CLOSE-UP: CHARACTER face CORE only (no outfit), LOCATION blurred
- MEDIUM: CHARACTER CORE+STANDARD, LOCATION CORE
- WIDE/FULL: All layers for everything
- ESTABLISHING (no characters): LOCATION gets full detail emphasis

## MIXING BASE + VARIANT

When an asset has a variant:
- Variant OVERRIDES matching base properties (e.g., hair color)
- Variant ADDS new properties (e.g., outfit to body)
- Result must be coherent, no contradictions

## OUTPUT STRUCTURE

Transform the DIRECTION into a cinematic prompt:
1. COMPOSITION - Camera/framing from the camera settings
2. SUBJECT(S) - Expand [TAGS] with appropriate detail level
3. ACTION - The action described in the direction
4. SETTING - Location details (if present)
5. ATMOSPHERE - Lighting and mood
6. STYLE - Visual style

**Respect the direction's intent:**
- If direction says "16:9 Format!" - mention widescreen/cinematic aspect ratio
- If direction has no characters - this is a pure environment shot
- If direction emphasizes something - give it prominence

## OUTPUT CONSTRAINTS

- Maximum %d words
- Style: %s (narrative = sentences, keywords = comma-separated)
- Output ONLY the final prompt text, no explanations`

const nanoBananaAdditions = `
For this image model:
- Use natural flowing sentences, not keyword lists
- Include specific camera terminology (lens, f-stop, angle)
- Describe lighting explicitly (key light direction, color temperature)
- Be generous with detail - this model handles rich descriptions well
`

// buildAssemblySystemPrompt подставляет ограничения пресета в системный
// промпт сборки. Для nano_banana_pro добавляются отдельные указания.
func buildAssemblySystemPrompt(presetName string, preset ModelPreset) string {
	base := fmt.Sprintf(assemblySystemPrompt, preset.MaxWords, preset.Style)
	if presetName == DefaultPresetName {
		base += nanoBananaAdditions
	}
	return base
}

// SceneAssembler превращает контекст сцены в финальный промпт генерации
// изображения одним вызовом LLM.
type SceneAssembler interface {
	AssembleScene(ctx context.Context, sceneCtx *SceneContext, presetName string) (string, error)
}

type assembler struct {
	clients  ClientProvider
	settings repository.SettingsRepository
	logger   *zap.Logger
}

// NewAssembler создает сборщик сцен.
func NewAssembler(clients ClientProvider, settings repository.SettingsRepository, logger *zap.Logger) SceneAssembler {
	return &assembler{
		clients:  clients,
		settings: settings,
		logger:   logger.Named("Assembler"),
	}
}

// AssembleScene собирает финальный промпт. Пустое presetName означает пресет
// из настроек, а при его отсутствии — пресет по умолчанию. Контекст сцены
// передается модели как JSON с отступами, ответ возвращается без обрамляющих
// пробелов.
func (a *assembler) AssembleScene(ctx context.Context, sceneCtx *SceneContext, presetName string) (string, error) {
	if presetName == "" {
		stored, err := a.settings.GetValue(ctx, SettingKeyImagePreset)
		if err != nil && !errors.Is(err, models.ErrNotFound) {
			return "", fmt.Errorf("read preset setting: %w", err)
		}
		presetName = stored
	}
	if presetName == "" {
		presetName = DefaultPresetName
	}
	preset := GetPreset(presetName)

	payload, err := json.MarshalIndent(sceneCtx, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal scene context: %w", err)
	}

	client, err := a.clients.Client(ctx)
	if err != nil {
		return "", err
	}

	a.logger.Info("Assembling scene prompt",
		zap.String("preset", presetName),
		zap.Int("maxWords", preset.MaxWords),
		zap.Int("assets", len(sceneCtx.Assets)))

	messages := []ai.Message{
		{Role: "system", Content: buildAssemblySystemPrompt(presetName, preset)},
		{Role: "user", Content: string(payload)},
	}
	result, err := client.Complete(ctx, messages, 0)
	if err != nil {
		return "", fmt.Errorf("scene assembly: %w", err)
	}
	return strings.TrimSpace(result), nil
}
