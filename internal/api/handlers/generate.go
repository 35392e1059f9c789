package handlers

import (
	"net/http"

	"precise-baker/internal/core/recipe"
	"precise-baker/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GenerateHandler AI 食譜生成處理器
type GenerateHandler struct {
	recipeSvc *recipe.Service
}

// NewGenerateHandler 創建生成處理器
func NewGenerateHandler(recipeSvc *recipe.Service) *GenerateHandler {
	return &GenerateHandler{recipeSvc: recipeSvc}
}

// PhotoToRecipe 從圖片辨識食譜
func (h *GenerateHandler) PhotoToRecipe(c *gin.Context) {
	var req struct {
		Image string `json:"image"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.Image == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required field: image"})
		return
	}

	result, err := h.recipeSvc.ExtractRecipeFromImage(c.Request.Context(), req.Image)
	if err != nil {
		common.LogWarn("圖片食譜辨識失敗", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{
			"recipeText":   "",
			"ingredients":  []string{},
			"instructions": []string{},
			"success":      false,
			"error":        err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recipeText":   result.RecipeText,
		"ingredients":  result.Ingredients,
		"instructions": result.Instructions,
		"success":      true,
	})
}

// GenerateRecipe 依菜名生成食譜
func (h *GenerateHandler) GenerateRecipe(c *gin.Context) {
	var req struct {
		DishName string `json:"dishName"`
		Cuisine  string `json:"cuisine"`
		Dietary  string `json:"dietary"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.DishName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required field: dishName"})
		return
	}

	recipeText, err := h.recipeSvc.RecipeByDishName(c.Request.Context(), req.DishName, req.Cuisine, req.Dietary)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to generate recipe",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recipe":  recipeText,
		"success": true,
	})
}

// GenerateFromIngredients 依食材清單生成食譜
func (h *GenerateHandler) GenerateFromIngredients(c *gin.Context) {
	var req struct {
		Ingredients    string `json:"ingredients"`
		ConversionType string `json:"conversionType"`
		HumidityAdjust bool   `json:"humidityAdjust"`
		ProMode        bool   `json:"proMode"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || req.Ingredients == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required field: ingredients"})
		return
	}

	recipeText, err := h.recipeSvc.GenerateFromIngredients(
		c.Request.Context(),
		req.Ingredients, req.ConversionType,
		req.HumidityAdjust, req.ProMode,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to generate recipe from ingredients",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recipe":  recipeText,
		"success": true,
	})
}
