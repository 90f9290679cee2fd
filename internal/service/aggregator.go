package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"continuum-server/internal/models"
	"continuum-server/internal/prompt"
	"continuum-server/internal/repository"
)

// SceneContext — полный контекст сцены для сборки финального промпта:
// режиссерское описание, разрешенные теги и технические слои кадра.
type SceneContext struct {
	Direction string                 `json:"direction"`
	Assets    map[string]ResolvedRef `json:"assets"`
	Camera    prompt.LayeredPrompt   `json:"camera"`
	Lighting  prompt.LayeredPrompt   `json:"lighting"`
	Style     prompt.LayeredPrompt   `json:"style"`
}

// SceneAggregator собирает контекст сцены из ее текста и привязанных ассетов.
type SceneAggregator interface {
	Aggregate(ctx context.Context, scene *models.Scene, styleOverrideID *int64) (*SceneContext, error)
}

type aggregator struct {
	resolver ReferenceResolver
	assets   repository.AssetRepository
	logger   *zap.Logger
}

// NewAggregator создает агрегатор контекста сцены.
func NewAggregator(resolver ReferenceResolver, assets repository.AssetRepository, logger *zap.Logger) SceneAggregator {
	return &aggregator{
		resolver: resolver,
		assets:   assets,
		logger:   logger.Named("Aggregator"),
	}
}

// Aggregate разбирает теги из текста сцены, разрешает каждый в описание
// ассета и дополняет контекст камерой, светом и стилем. Повторные вхождения
// одного тега схлопываются, ключом служит буквальный текст тега. Стиль
// вызывающего (styleOverrideID) имеет приоритет над стилем сцены.
func (a *aggregator) Aggregate(ctx context.Context, scene *models.Scene, styleOverrideID *int64) (*SceneContext, error) {
	sceneCtx := &SceneContext{
		Direction: scene.ActionText,
		Assets:    make(map[string]ResolvedRef),
	}

	for _, ref := range prompt.ParseTags(scene.ActionText) {
		key := ref.Key()
		if _, seen := sceneCtx.Assets[key]; seen {
			continue
		}
		resolved, err := a.resolver.Resolve(ctx, ref, scene.ProjectID)
		if err != nil {
			return nil, err
		}
		if resolved == nil {
			continue
		}
		sceneCtx.Assets[key] = *resolved
	}

	camera, err := a.layersByID(ctx, scene.ShotTypeID)
	if err != nil {
		return nil, fmt.Errorf("resolve shot type: %w", err)
	}
	sceneCtx.Camera = camera

	lighting, err := a.layersByID(ctx, scene.LightingID)
	if err != nil {
		return nil, fmt.Errorf("resolve lighting: %w", err)
	}
	sceneCtx.Lighting = lighting

	styleID := scene.StyleID
	if styleOverrideID != nil {
		styleID = styleOverrideID
	}
	style, err := a.layersByID(ctx, styleID)
	if err != nil {
		return nil, fmt.Errorf("resolve style: %w", err)
	}
	sceneCtx.Style = style

	return sceneCtx, nil
}

// layersByID читает базовое описание ассета по опциональному id. Отсутствие
// ссылки или самого ассета дает пустые слои, не ошибку.
func (a *aggregator) layersByID(ctx context.Context, id *int64) (prompt.LayeredPrompt, error) {
	if id == nil {
		return prompt.LayeredPrompt{}, nil
	}
	asset, err := a.assets.GetByID(ctx, *id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			a.logger.Warn("Scene references a missing asset", zap.Int64("assetID", *id))
			return prompt.LayeredPrompt{}, nil
		}
		return prompt.LayeredPrompt{}, err
	}
	return prompt.Decode(asset.BasePrompt), nil
}
