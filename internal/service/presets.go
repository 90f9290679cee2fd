package service

// PresetStyle — режим вывода целевой модели генерации изображений.
type PresetStyle string

const (
	StyleNarrative PresetStyle = "narrative" // связные предложения
	StyleKeywords  PresetStyle = "keywords"  // ключевые слова через запятую
)

// ModelPreset описывает ограничения вывода для конкретной модели генерации
// изображений: лимит слов, режим текста и ожидаемую структуру секций.
type ModelPreset struct {
	Name      string      `json:"name"`
	MaxWords  int         `json:"max_words"`
	Style     PresetStyle `json:"style"`
	Structure []string    `json:"structure"`
}

// DefaultPresetName — пресет по умолчанию, когда ни настройки, ни вызывающий
// ничего не задали.
const DefaultPresetName = "nano_banana_pro"

// SettingKeyImagePreset — ключ настроек с именем выбранного пресета.
const SettingKeyImagePreset = "image_model_preset"

// Статический каталог пресетов. Не меняется в рантайме.
var imageModelPresets = map[string]ModelPreset{
	"nano_banana_pro": {
		Name:      "Nano Banana Pro",
		MaxWords:  300,
		Style:     StyleNarrative,
		Structure: []string{"composition", "subject", "action", "setting", "atmosphere", "style"},
	},
	"midjourney": {
		Name:      "Midjourney",
		MaxWords:  80,
		Style:     StyleKeywords,
		Structure: []string{"subject", "style", "parameters"},
	},
	"dall_e": {
		Name:      "DALL-E",
		MaxWords:  120,
		Style:     StyleNarrative,
		Structure: []string{"subject", "action", "setting", "style"},
	},
	"stable_diffusion": {
		Name:      "Stable Diffusion",
		MaxWords:  75,
		Style:     StyleKeywords,
		Structure: []string{"subject", "style", "quality"},
	},
}

// GetPreset возвращает пресет по имени. Неизвестное имя — пресет по
// умолчанию: вызывающим не нужно обрабатывать "пресет не найден".
func GetPreset(name string) ModelPreset {
	if preset, ok := imageModelPresets[name]; ok {
		return preset
	}
	return imageModelPresets[DefaultPresetName]
}
