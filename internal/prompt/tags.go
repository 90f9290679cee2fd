package prompt

import "regexp"

// TagRef — одна инлайн-ссылка на ассет из текста режиссуры.
type TagRef struct {
	Asset   string // Имя ассета (сегмент до двоеточия)
	Variant string // Имя варианта (сегмент после двоеточия), пусто если не задан
	Raw     string // Полное совпадение вместе со скобками, например "[ANNA:Medieval]"
}

// Key возвращает литеральный текст тега без скобок: "NAME" или "NAME:VARIANT".
// Используется как ключ в карте разрешенных ссылок контекста сцены.
func (r TagRef) Key() string {
	if r.Variant != "" {
		return r.Asset + ":" + r.Variant
	}
	return r.Asset
}

// Имя ассета: буквы (включая диакритику — \p{L}), цифры, пробел, подчерк,
// точка, дефис. Имя варианта: все кроме закрывающей скобки. Вложенные и
// экранированные скобки не поддерживаются.
var tagPattern = regexp.MustCompile(`\[([\p{L}0-9_ .\-]+)(?::([^\]]+))?\]`)

// ParseTags извлекает ссылки [ИМЯ] и [ИМЯ:Вариант] из произвольного текста
// в порядке появления. Дубликаты сохраняются: тег, встреченный дважды, дает
// два элемента результата.
func ParseTags(text string) []TagRef {
	matches := tagPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	refs := make([]TagRef, 0, len(matches))
	for _, m := range matches {
		refs = append(refs, TagRef{
			Asset:   m[1],
			Variant: m[2],
			Raw:     m[0],
		})
	}
	return refs
}
