package prompt

import (
	"encoding/json"
	"strings"
)

// LayeredPrompt — трехслойное описание ассета с возрастающей детализацией.
// Слои по соглашению не пересекаются: standard и detail только добавляют
// новую информацию и не повторяют предыдущие слои. Само соглашение
// обеспечивается инструкциями генератору, кодек его не проверяет.
type LayeredPrompt struct {
	Core     string `json:"core"`     // Всегда видимые, опознаваемые черты
	Standard string `json:"standard"` // Детали средней дистанции
	Detail   string `json:"detail"`   // Мелкие детали для крупных планов
}

// IsEmpty сообщает, что все три слоя пусты.
func (p LayeredPrompt) IsEmpty() bool {
	return p.Core == "" && p.Standard == "" && p.Detail == ""
}

// Encode сериализует описание в компактную JSON-строку для хранения в БД.
func Encode(p LayeredPrompt) string {
	data, err := json.Marshal(p)
	if err != nil {
		// Структура из трех строк не может не сериализоваться
		return "{}"
	}
	return string(data)
}

// Decode разбирает сохраненную строку в LayeredPrompt. Никогда не возвращает
// ошибку: пустая строка дает пустое описание, а старый неструктурированный
// текст целиком попадает в слой core (legacy-fallback).
func Decode(s string) LayeredPrompt {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return LayeredPrompt{}
	}

	var p LayeredPrompt
	if err := json.Unmarshal([]byte(trimmed), &p); err != nil {
		return LayeredPrompt{Core: s}
	}
	return p
}
