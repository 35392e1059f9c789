package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *GormStore {
	t.Helper()

	db, err := Setup("", false)
	require.NoError(t, err)
	return NewGormStore(db)
}

func TestSeedIsIdempotent(t *testing.T) {
	db, err := Setup("", false)
	require.NoError(t, err)

	require.NoError(t, Seed(db))
	require.NoError(t, Seed(db))

	store := NewGormStore(db)
	ctx := context.Background()

	links, err := store.SocialLinks(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, links, 6)
	assert.Equal(t, "Instagram", links[0].Platform)

	recipes, err := store.Recipes(ctx, nil, nil)
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	assert.Equal(t, "Perfect Chocolate Chip Cookies", recipes[0].Title)
	assert.True(t, recipes[0].Featured)
	assert.Len(t, recipes[0].Ingredients, 7)
}

func TestSocialLinkCRUD(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	link := &SocialLink{Platform: "TikTok", Username: "@precise", URL: "#", IconClass: "ri-tiktok-line", BgColorClass: "primary"}
	require.NoError(t, store.CreateSocialLink(ctx, link))
	assert.NotZero(t, link.ID)

	newURL := "https://tiktok.com/@precise"
	updated, err := store.UpdateSocialLink(ctx, link.ID, SocialLinkUpdate{URL: &newURL})
	require.NoError(t, err)
	assert.Equal(t, newURL, updated.URL)
	assert.Equal(t, "TikTok", updated.Platform, "untouched fields survive a partial update")

	_, err = store.UpdateSocialLink(ctx, 9999, SocialLinkUpdate{URL: &newURL})
	assert.ErrorIs(t, err, ErrRecordNotFound)

	require.NoError(t, store.DeleteSocialLink(ctx, link.ID))
	assert.ErrorIs(t, store.DeleteSocialLink(ctx, link.ID), ErrRecordNotFound)
}

func TestRecipeCRUDAndFilters(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	userID := uint(7)
	featured := &Recipe{Title: "Sourdough", Description: "d", Instructions: "i", Featured: true, UserID: &userID}
	plain := &Recipe{Title: "Pancakes", Description: "d", Instructions: "i"}
	require.NoError(t, store.CreateRecipe(ctx, featured))
	require.NoError(t, store.CreateRecipe(ctx, plain))

	all, err := store.Recipes(ctx, nil, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	onlyFeatured := true
	got, err := store.Recipes(ctx, nil, &onlyFeatured)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Sourdough", got[0].Title)

	byUser, err := store.Recipes(ctx, &userID, nil)
	require.NoError(t, err)
	require.Len(t, byUser, 1)
	assert.Equal(t, "Sourdough", byUser[0].Title)

	title := "Buttermilk Pancakes"
	updated, err := store.UpdateRecipe(ctx, plain.ID, RecipeUpdate{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)

	_, err = store.Recipe(ctx, 9999)
	assert.ErrorIs(t, err, ErrRecordNotFound)

	require.NoError(t, store.DeleteRecipe(ctx, plain.ID))
	assert.ErrorIs(t, store.DeleteRecipe(ctx, plain.ID), ErrRecordNotFound)
}

func TestRecipeIngredientsRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	recipe := &Recipe{
		Title:        "Brownies",
		Description:  "d",
		Instructions: "i",
		Ingredients: []RecipeIngredient{
			{Name: "cocoa", Amount: "1/2 cup", Weight: "60g"},
			{Name: "sugar", Amount: "1 cup", Weight: "200g"},
		},
	}
	require.NoError(t, store.CreateRecipe(ctx, recipe))

	got, err := store.Recipe(ctx, recipe.ID)
	require.NoError(t, err)
	require.Len(t, got.Ingredients, 2)
	assert.Equal(t, "cocoa", got.Ingredients[0].Name)
	assert.Equal(t, "60g", got.Ingredients[0].Weight)
}

func TestConversionHistory(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	userID := uint(3)
	require.NoError(t, store.SaveConversionHistory(ctx, &ConversionHistory{
		OriginalRecipe:  "2 cups flour",
		ConvertedRecipe: "240g flour",
		ConversionType:  "cup-to-gram",
		ScaleFactor:     "1",
		Timestamp:       "2025-01-01T00:00:00Z",
		UserID:          &userID,
	}))
	require.NoError(t, store.SaveConversionHistory(ctx, &ConversionHistory{
		OriginalRecipe:  "100g sugar",
		ConvertedRecipe: "1/2 cup sugar",
		ConversionType:  "gram-to-cup",
		ScaleFactor:     "1",
		Timestamp:       "2025-01-02T00:00:00Z",
	}))

	all, err := store.ConversionHistories(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := store.ConversionHistories(ctx, &userID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "cup-to-gram", mine[0].ConversionType)
}
