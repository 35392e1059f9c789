package convert

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackIngredientLinesCupToGram(t *testing.T) {
	e := NewEngine()

	lines := e.FallbackIngredientLines("cup-to-gram", "1")
	require.Len(t, lines, 7)

	assert.Equal(t, "- **240g** all-purpose flour (2 cups)", lines[0])
	assert.Equal(t, "- **200g** granulated sugar (1 cup)", lines[1])
	assert.Equal(t, "- **220g** brown sugar, packed (1 cup)", lines[2])
	assert.Equal(t, "- **113g** unsalted butter (1/2 cup)", lines[3])
	assert.Equal(t, "- **5g** vanilla extract (1 tsp)", lines[4])
	assert.Equal(t, "- **6g** salt (1 tsp)", lines[5])
	assert.Equal(t, "- **170g** chocolate chips (1 cup)", lines[6])
}

func TestFallbackIngredientLinesGramToVolume(t *testing.T) {
	e := NewEngine()

	lines := e.FallbackIngredientLines("gram-to-cup", "1")
	require.Len(t, lines, 7)

	assert.Equal(t, "- **2 cups** all-purpose flour (240g)", lines[0])
	assert.Equal(t, "- **1 cup** granulated sugar (200g)", lines[1])
	// "1/2 cup" 解析開頭數字為 1，與原始資料格式行為一致
	assert.Equal(t, "- **1 cup** unsalted butter (113g)", lines[3])
	assert.Equal(t, "- **1 tsp** vanilla extract (5g)", lines[4])
}

func TestFallbackScaling(t *testing.T) {
	e := NewEngine()

	base := e.FallbackIngredientLines("cup-to-gram", "1")
	doubled := e.FallbackIngredientLines("cup-to-gram", "2")
	require.Len(t, doubled, len(base))

	// 每一條的克數都必須是兩倍，順序不變
	assert.Equal(t, "- **480g** all-purpose flour (2 cups)", doubled[0])
	assert.Equal(t, "- **400g** granulated sugar (1 cup)", doubled[1])
	assert.Equal(t, "- **440g** brown sugar, packed (1 cup)", doubled[2])
	assert.Equal(t, "- **226g** unsalted butter (1/2 cup)", doubled[3])
	assert.Equal(t, "- **10g** vanilla extract (1 tsp)", doubled[4])
	assert.Equal(t, "- **12g** salt (1 tsp)", doubled[5])
	assert.Equal(t, "- **340g** chocolate chips (1 cup)", doubled[6])
}

func TestFallbackCustomScale(t *testing.T) {
	e := NewEngine()

	lines := e.FallbackIngredientLines("cup-to-gram", "2.5")
	assert.Equal(t, "- **600g** all-purpose flour (2 cups)", lines[0])
	assert.Equal(t, "- **282.5g** unsalted butter (1/2 cup)", lines[3])
	assert.Equal(t, "- **12.5g** vanilla extract (1 tsp)", lines[4])
}

func TestFallbackInvalidScaleDefaultsToOne(t *testing.T) {
	e := NewEngine()

	base := e.FallbackIngredientLines("cup-to-gram", "1")

	for _, s := range []string{"not-a-number", "", "0", "-2"} {
		assert.Equal(t, base, e.FallbackIngredientLines("cup-to-gram", s), "scale %q", s)
	}
}

func TestRenderFallbackRecipe(t *testing.T) {
	e := NewEngine()

	out := e.RenderFallbackRecipe("Chocolate Chip Cookies\n2 cups flour...", "cup-to-gram", "1", true, true)

	assert.True(t, strings.HasPrefix(out, "\n## Chocolate Chip Cookies\n\n"), "title must come from the first line")
	assert.Contains(t, out, "- **240g** all-purpose flour (2 cups)")
	assert.Contains(t, out, proModeNote)
	assert.Contains(t, out, humidityNote)
}

func TestRenderFallbackRecipeFlagsOff(t *testing.T) {
	e := NewEngine()

	out := e.RenderFallbackRecipe("", "gram-to-cup", "1", false, false)

	assert.True(t, strings.HasPrefix(out, "\n## Converted Recipe\n"), "empty text falls back to the default title")
	assert.NotContains(t, out, "Professional Baker Notes")
	assert.NotContains(t, out, "Humidity adjustment applied")
	assert.Contains(t, out, "- **2 cups** all-purpose flour (240g)")
}
