package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	original := LayeredPrompt{
		Core:     "young woman with copper-red wavy hair",
		Standard: "slender build, pale skin with freckles",
		Detail:   "small scar above left eyebrow, green eyes",
	}

	decoded := Decode(Encode(original))
	assert.Equal(t, original, decoded)
}

func TestDecode_EmptyString(t *testing.T) {
	p := Decode("")
	assert.Equal(t, LayeredPrompt{}, p)
	assert.True(t, p.IsEmpty())

	// Строка из одних пробелов эквивалентна пустой
	assert.Equal(t, LayeredPrompt{}, Decode("   \n\t"))
}

func TestDecode_LegacyPlainText(t *testing.T) {
	// Неструктурированный текст не ошибка: все уходит в core
	p := Decode("plain unstructured text")
	assert.Equal(t, "plain unstructured text", p.Core)
	assert.Empty(t, p.Standard)
	assert.Empty(t, p.Detail)
}

func TestDecode_PartialJSON(t *testing.T) {
	p := Decode(`{"core": "medium close-up"}`)
	assert.Equal(t, "medium close-up", p.Core)
	assert.Empty(t, p.Standard)
	assert.Empty(t, p.Detail)
}

func TestDecode_InvalidJSONFallsBackToCore(t *testing.T) {
	// Обрезанный JSON тоже трактуем как legacy-текст
	raw := `{"core": "broken`
	p := Decode(raw)
	assert.Equal(t, raw, p.Core)
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, LayeredPrompt{}.IsEmpty())
	assert.False(t, LayeredPrompt{Standard: "x"}.IsEmpty())
}
