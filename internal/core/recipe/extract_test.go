package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExtractResponse(t *testing.T) {
	text := "Title: Classic Banana Bread\n" +
		"Ingredients:\n" +
		"- 240g all-purpose flour\n" +
		"- 3 ripe bananas, mashed\n" +
		"- 113g unsalted butter\n" +
		"Instructions:\n" +
		"1. Preheat oven to 350°F.\n" +
		"2. Mash bananas and mix with melted butter.\n" +
		"3. Fold in flour and bake for 60 minutes.\n"

	result := parseExtractResponse(text)

	require.Len(t, result.Ingredients, 3)
	assert.Equal(t, "240g all-purpose flour", result.Ingredients[0])
	assert.Equal(t, "113g unsalted butter", result.Ingredients[2])

	require.Len(t, result.Instructions, 3)
	assert.Equal(t, "Preheat oven to 350°F.", result.Instructions[0])
	assert.Equal(t, "Fold in flour and bake for 60 minutes.", result.Instructions[2])

	assert.Contains(t, result.RecipeText, "# Classic Banana Bread")
	assert.Contains(t, result.RecipeText, "## Ingredients\n- 240g all-purpose flour")
	assert.Contains(t, result.RecipeText, "## Instructions\n1. Preheat oven to 350°F.")
}

func TestParseExtractResponseRenumbersSteps(t *testing.T) {
	text := "Title: Scones\n" +
		"Ingredients:\n" +
		"- 500g flour\n" +
		"Instructions:\n" +
		"4. Mix.\n" +
		"9. Bake.\n"

	result := parseExtractResponse(text)

	require.Len(t, result.Instructions, 2)
	assert.Contains(t, result.RecipeText, "1. Mix.\n2. Bake.")
}

func TestParseExtractResponseMissingTitle(t *testing.T) {
	text := "Ingredients:\n- 1 egg\nInstructions:\n1. Beat the egg.\n"

	result := parseExtractResponse(text)

	assert.Contains(t, result.RecipeText, "# Extracted Recipe")
	require.Len(t, result.Ingredients, 1)
	require.Len(t, result.Instructions, 1)
}

func TestParseExtractResponseMissingSections(t *testing.T) {
	result := parseExtractResponse("Just a paragraph describing a cake.")

	assert.Empty(t, result.Ingredients)
	assert.Empty(t, result.Instructions)
	assert.Contains(t, result.RecipeText, "# Extracted Recipe")
}
