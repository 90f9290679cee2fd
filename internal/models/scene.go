package models

import "time"

// Scene представляет одну сцену проекта: свободный текст режиссуры
// (action_text c инлайн-тегами вида [ИМЯ] / [ИМЯ:Вариант]), опциональные
// ссылки на ассеты кадра/стиля/света и кэш последнего собранного промпта.
type Scene struct {
	ID              int64     `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	ProjectID       int64     `json:"project_id" db:"project_id"`
	ShotTypeID      *int64    `json:"shot_type_id" db:"shot_type_id"`
	StyleID         *int64    `json:"style_id" db:"style_id"`
	LightingID      *int64    `json:"lighting_id" db:"lighting_id"`
	ActionText      string    `json:"action_text" db:"action_text"`
	GeneratedPrompt string    `json:"generated_prompt" db:"generated_prompt"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}
