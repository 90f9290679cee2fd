package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"continuum-server/internal/models"
	"continuum-server/internal/prompt"
	"continuum-server/internal/repository"
)

// ResolvedRef — результат разрешения одного тега: тип и имя ассета, его
// базовое многослойное описание и (опционально) дельта варианта.
type ResolvedRef struct {
	Type    models.AssetType      `json:"type"`
	Name    string                `json:"name"`
	Base    prompt.LayeredPrompt  `json:"base"`
	Variant *prompt.LayeredPrompt `json:"variant"`
}

// ReferenceResolver разрешает теги сцены в описания ассетов.
type ReferenceResolver interface {
	Resolve(ctx context.Context, ref prompt.TagRef, projectID int64) (*ResolvedRef, error)
}

type resolver struct {
	assets   repository.AssetRepository
	variants repository.VariantRepository
	logger   *zap.Logger
}

// NewResolver создает resolver поверх репозиториев ассетов и вариантов.
func NewResolver(assets repository.AssetRepository, variants repository.VariantRepository, logger *zap.Logger) ReferenceResolver {
	return &resolver{
		assets:   assets,
		variants: variants,
		logger:   logger.Named("Resolver"),
	}
}

// Resolve ищет ассет по имени среди видимых проекту (свои плюс глобальные).
// Ненайденный ассет или вариант — не ошибка: тег молча пропускается, сборка
// сцены продолжается с тем, что нашлось. Ошибкой считается только отказ
// хранилища.
func (r *resolver) Resolve(ctx context.Context, ref prompt.TagRef, projectID int64) (*ResolvedRef, error) {
	asset, err := r.assets.FindVisibleByName(ctx, ref.Asset, projectID)
	if err != nil {
		return nil, fmt.Errorf("find asset %q: %w", ref.Asset, err)
	}
	if asset == nil {
		r.logger.Debug("Tag did not match any visible asset", zap.String("tag", ref.Raw), zap.Int64("projectID", projectID))
		return nil, nil
	}

	resolved := &ResolvedRef{
		Type: asset.Type,
		Name: asset.Name,
		Base: prompt.Decode(asset.BasePrompt),
	}

	if ref.Variant != "" {
		variant, err := r.variants.FindByName(ctx, asset.ID, ref.Variant)
		if err != nil {
			return nil, fmt.Errorf("find variant %q of asset %d: %w", ref.Variant, asset.ID, err)
		}
		if variant != nil {
			delta := prompt.Decode(variant.DeltaPrompt)
			resolved.Variant = &delta
		} else {
			r.logger.Debug("Variant not found, using base asset only",
				zap.String("asset", asset.Name), zap.String("variant", ref.Variant))
		}
	}

	return resolved, nil
}
