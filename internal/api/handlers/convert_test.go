package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	aiservice "precise-baker/internal/core/ai/service"
	"precise-baker/internal/core/convert"
	"precise-baker/internal/core/recipe"
	"precise-baker/internal/infrastructure/config"
	"precise-baker/internal/infrastructure/persistence"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConvertRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := persistence.Setup("", false)
	require.NoError(t, err)
	store := persistence.NewGormStore(db)

	// 調短 AI 超時，讓轉換請求立即落入本地轉換表
	cfg := &config.Config{}
	cfg.Gemini.Timeout = 50 * time.Millisecond
	cfg.Image.MaxSizeBytes = 1 << 20

	recipeSvc := recipe.NewService(aiservice.NewService(cfg, nil))
	h := NewConvertHandler(convert.NewEngine(), recipeSvc, store)

	router := gin.New()
	router.POST("/api/convert-measurement", h.ConvertMeasurement)
	router.POST("/api/convert-recipe", h.ConvertRecipe)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestConvertMeasurement(t *testing.T) {
	router := newConvertRouter(t)

	w := postJSON(t, router, "/api/convert-measurement", map[string]interface{}{
		"quantity": "2",
		"fromUnit": "cup",
		"toUnit":   "tbsp",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Result  string `json:"result"`
		Success bool   `json:"success"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "2 cup = 32.00 tbsp", resp.Result)
}

func TestConvertMeasurementWithIngredient(t *testing.T) {
	router := newConvertRouter(t)

	w := postJSON(t, router, "/api/convert-measurement", map[string]interface{}{
		"quantity":   "1",
		"fromUnit":   "cup",
		"toUnit":     "g",
		"ingredient": "flour",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "1 cup = 141.95 g of flour")
}

func TestConvertMeasurementMissingField(t *testing.T) {
	router := newConvertRouter(t)

	w := postJSON(t, router, "/api/convert-measurement", map[string]interface{}{
		"quantity": "2",
		"fromUnit": "cup",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing required fields: quantity, fromUnit, or toUnit")
}

func TestConvertMeasurementInvalidQuantity(t *testing.T) {
	router := newConvertRouter(t)

	w := postJSON(t, router, "/api/convert-measurement", map[string]interface{}{
		"quantity": "abc",
		"fromUnit": "cup",
		"toUnit":   "tbsp",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Quantity must be a valid number")
}

func TestConvertMeasurementUnsupportedPair(t *testing.T) {
	router := newConvertRouter(t)

	w := postJSON(t, router, "/api/convert-measurement", map[string]interface{}{
		"quantity": "1",
		"fromUnit": "pinch",
		"toUnit":   "lb",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Conversion between these units is not supported")
}

func TestConvertRecipeMissingFields(t *testing.T) {
	router := newConvertRouter(t)

	w := postJSON(t, router, "/api/convert-recipe", map[string]interface{}{
		"recipeText": "2 cups flour",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing required fields: recipeText, conversionType, or scaleFactor")
}

func TestConvertRecipeFallsBackWhenAIUnavailable(t *testing.T) {
	router := newConvertRouter(t)

	w := postJSON(t, router, "/api/convert-recipe", map[string]interface{}{
		"recipeText":     "Chocolate Chip Cookies\n2 cups flour",
		"conversionType": "cup-to-gram",
		"scaleFactor":    "1",
		"proMode":        true,
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ConvertedRecipe string `json:"convertedRecipe"`
		Success         bool   `json:"success"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, resp.ConvertedRecipe, "## Chocolate Chip Cookies")
	assert.Contains(t, resp.ConvertedRecipe, "- **240g** all-purpose flour (2 cups)")
	assert.Contains(t, resp.ConvertedRecipe, "**Professional Baker Notes:**")
	assert.NotContains(t, resp.ConvertedRecipe, "Humidity adjustment")
}
