package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTags_NoTags(t *testing.T) {
	for _, text := range []string{
		"",
		"a quiet street at dawn",
		"brackets ] without [ a tag",
		"[] empty tag is not a reference",
	} {
		assert.Empty(t, ParseTags(text), "input: %q", text)
	}
}

func TestParseTags_AssetWithVariant(t *testing.T) {
	refs := ParseTags("[ANNA:Medieval] walks through [MARKET:1500]")
	require.Len(t, refs, 2)

	assert.Equal(t, "ANNA", refs[0].Asset)
	assert.Equal(t, "Medieval", refs[0].Variant)
	assert.Equal(t, "[ANNA:Medieval]", refs[0].Raw)
	assert.Equal(t, "ANNA:Medieval", refs[0].Key())

	assert.Equal(t, "MARKET", refs[1].Asset)
	assert.Equal(t, "1500", refs[1].Variant)
}

func TestParseTags_AssetWithoutVariant(t *testing.T) {
	refs := ParseTags("[LIBRARY] at night")
	require.Len(t, refs, 1)
	assert.Equal(t, "LIBRARY", refs[0].Asset)
	assert.Empty(t, refs[0].Variant)
	assert.Equal(t, "LIBRARY", refs[0].Key())
}

func TestParseTags_AccentedCharacters(t *testing.T) {
	// Умляуты и прочая диакритика — полноценные символы имени
	refs := ParseTags("[MÜNCHEN:Winter] at night")
	require.Len(t, refs, 1)
	assert.Equal(t, "MÜNCHEN", refs[0].Asset)
	assert.Equal(t, "Winter", refs[0].Variant)
}

func TestParseTags_DuplicatesPreserved(t *testing.T) {
	refs := ParseTags("[ANNA] looks at [ANNA] in the mirror")
	require.Len(t, refs, 2)
	assert.Equal(t, refs[0], refs[1])
}

func TestParseTags_NameCharset(t *testing.T) {
	refs := ParseTags("[Dr. von Habsburg-Lothringen_2] enters")
	require.Len(t, refs, 1)
	assert.Equal(t, "Dr. von Habsburg-Lothringen_2", refs[0].Asset)
}

func TestParseTags_VariantAllowsAnythingButBracket(t *testing.T) {
	refs := ParseTags("[CASTLE:ruined & overgrown (year 1200)]")
	require.Len(t, refs, 1)
	assert.Equal(t, "CASTLE", refs[0].Asset)
	assert.Equal(t, "ruined & overgrown (year 1200)", refs[0].Variant)
}
