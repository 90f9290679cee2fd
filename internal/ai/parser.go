package ai

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"continuum-server/internal/prompt"
)

// LayeredReply — разобранный структурированный ответ генератора на запрос
// обогащения: три слоя описания и, для персонажей, опциональная выжимка
// одежды отдельным трехслойным блоком.
type LayeredReply struct {
	Layers           prompt.LayeredPrompt  `json:"layers"`
	OutfitSuggestion *prompt.LayeredPrompt `json:"outfit_suggestion,omitempty"`
}

// Модели любят заворачивать JSON в markdown-ограждение, несмотря на инструкции
var codeFencePattern = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// stripCodeFence убирает декоративное ограждение ```...``` вокруг ответа.
func stripCodeFence(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if !strings.HasPrefix(cleaned, "```") {
		return cleaned
	}
	if m := codeFencePattern.FindStringSubmatch(cleaned); m != nil {
		return m[1]
	}
	return cleaned
}

// ParseLayeredReply разбирает ответ генератора на запрос обогащения.
// В отличие от толерантного кодека prompt.Decode, отсутствие валидной
// структуры здесь — жесткая ошибка ErrMalformedReply: бесструктурный ответ
// обогащения непригоден, и молча превращать его в слой core нельзя.
func ParseLayeredReply(raw string) (LayeredReply, error) {
	cleaned := stripCodeFence(raw)

	var payload struct {
		Core             string `json:"core"`
		Standard         string `json:"standard"`
		Detail           string `json:"detail"`
		OutfitSuggestion *struct {
			Core     string `json:"core"`
			Standard string `json:"standard"`
			Detail   string `json:"detail"`
		} `json:"outfit_suggestion"`
	}

	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return LayeredReply{}, fmt.Errorf("%w: %v", ErrMalformedReply, err)
	}

	reply := LayeredReply{
		Layers: prompt.LayeredPrompt{
			Core:     payload.Core,
			Standard: payload.Standard,
			Detail:   payload.Detail,
		},
	}

	if payload.OutfitSuggestion != nil {
		outfit := prompt.LayeredPrompt{
			Core:     payload.OutfitSuggestion.Core,
			Standard: payload.OutfitSuggestion.Standard,
			Detail:   payload.OutfitSuggestion.Detail,
		}
		if !outfit.IsEmpty() {
			reply.OutfitSuggestion = &outfit
		}
	}

	return reply, nil
}
