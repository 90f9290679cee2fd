package models

import "time"

// AssetType определяет тип визуального ассета.
type AssetType string

const (
	AssetTypeCharacter     AssetType = "character"
	AssetTypeLocation      AssetType = "location"
	AssetTypeObject        AssetType = "object"
	AssetTypeStyle         AssetType = "style"
	AssetTypeShotType      AssetType = "shot_type"
	AssetTypeLightingSetup AssetType = "lighting_setup"
)

// IsValid проверяет, что значение входит в закрытый набор типов ассетов.
func (t AssetType) IsValid() bool {
	switch t {
	case AssetTypeCharacter, AssetTypeLocation, AssetTypeObject,
		AssetTypeStyle, AssetTypeShotType, AssetTypeLightingSetup:
		return true
	}
	return false
}

// Asset представляет переиспользуемый визуальный ассет (персонаж, локация,
// объект, стиль, тип кадра или схема света) с базовым многослойным описанием.
// Инвариант: ассет либо глобальный (is_global=true, project_id=NULL), либо
// принадлежит проекту (project_id задан).
type Asset struct {
	ID         int64     `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Type       AssetType `json:"type" db:"type"`
	BasePrompt string    `json:"base_prompt" db:"base_prompt"` // Сериализованный LayeredPrompt
	ProjectID  *int64    `json:"project_id" db:"project_id"`
	IsGlobal   bool      `json:"is_global" db:"is_global"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// Variant представляет именованную дельту поверх базового описания ассета
// (например, "Anna" + вариант "Medieval"). Без ассета вариант не существует.
type Variant struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	DeltaPrompt string    `json:"delta_prompt" db:"delta_prompt"` // Сериализованный LayeredPrompt
	AssetID     int64     `json:"asset_id" db:"asset_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
