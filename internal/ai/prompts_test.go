package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"continuum-server/internal/models"
)

func TestBuildLayeredSystemPrompt_CharacterHasOutfitRules(t *testing.T) {
	p := BuildLayeredSystemPrompt(models.AssetTypeCharacter)
	assert.True(t, strings.HasPrefix(p, layeredBasePrompt))
	assert.Contains(t, p, "outfit_suggestion")
	assert.Contains(t, p, "Face accessories")
}

func TestBuildLayeredSystemPrompt_UnknownTypeFallsBackToBase(t *testing.T) {
	p := BuildLayeredSystemPrompt(models.AssetType("unknown"))
	assert.Equal(t, layeredBasePrompt, p)
}

func TestBuildVariantSystemPrompt_AppendsBase(t *testing.T) {
	p := BuildVariantSystemPrompt(models.AssetTypeLocation, `{"core":"victorian library"}`)
	assert.Contains(t, p, "LOCATION variants")
	assert.Contains(t, p, "Base asset (location):")
	assert.Contains(t, p, `{"core":"victorian library"}`)
}

func TestBuildVariantSystemPrompt_TypeWithoutCatalogEntry(t *testing.T) {
	// Для типов без типоспецифичных правил остаются только общие правила дельты
	p := BuildVariantSystemPrompt(models.AssetTypeStyle, "base")
	assert.Contains(t, p, "VARIANT RULES")
	assert.Contains(t, p, "Base asset (style):")
	assert.NotContains(t, p, "Focus for CHARACTER variants")
}
