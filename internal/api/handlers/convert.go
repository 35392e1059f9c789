package handlers

import (
	"errors"
	"net/http"
	"time"

	"precise-baker/internal/core/convert"
	"precise-baker/internal/core/recipe"
	"precise-baker/internal/infrastructure/persistence"
	"precise-baker/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ConvertHandler 量測與食譜轉換處理器
type ConvertHandler struct {
	engine    *convert.Engine
	recipeSvc *recipe.Service
	store     persistence.Store
}

// NewConvertHandler 創建轉換處理器
func NewConvertHandler(engine *convert.Engine, recipeSvc *recipe.Service, store persistence.Store) *ConvertHandler {
	return &ConvertHandler{
		engine:    engine,
		recipeSvc: recipeSvc,
		store:     store,
	}
}

// ConvertMeasurement 單一量測轉換
func (h *ConvertHandler) ConvertMeasurement(c *gin.Context) {
	var req struct {
		Quantity   string `json:"quantity"`
		FromUnit   string `json:"fromUnit"`
		ToUnit     string `json:"toUnit"`
		Ingredient string `json:"ingredient"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if req.Quantity == "" || req.FromUnit == "" || req.ToUnit == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Missing required fields: quantity, fromUnit, or toUnit",
		})
		return
	}

	result, err := h.engine.Convert(req.Quantity, convert.Unit(req.FromUnit), convert.Unit(req.ToUnit), req.Ingredient)
	if err != nil {
		var ce *common.CustomError
		if errors.As(err, &ce) {
			c.JSON(ce.Status, gin.H{"message": ce.Message})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result":  result.Formatted,
		"success": true,
	})
}

// ConvertRecipe 整份食譜轉換。AI 失敗不視為錯誤，
// 改用本地靜態表渲染結果回應。
func (h *ConvertHandler) ConvertRecipe(c *gin.Context) {
	var req struct {
		RecipeText     string `json:"recipeText"`
		ConversionType string `json:"conversionType"`
		ScaleFactor    string `json:"scaleFactor"`
		HumidityAdjust bool   `json:"humidityAdjust"`
		ProMode        bool   `json:"proMode"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if req.RecipeText == "" || req.ConversionType == "" || req.ScaleFactor == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Missing required fields: recipeText, conversionType, or scaleFactor",
		})
		return
	}

	converted, err := h.recipeSvc.ConvertRecipeText(
		c.Request.Context(),
		req.RecipeText, req.ConversionType, req.ScaleFactor,
		req.HumidityAdjust, req.ProMode,
	)
	if err != nil {
		common.LogWarn("AI 轉換失敗，改用本地轉換表",
			zap.Error(err),
			zap.String("conversion_type", req.ConversionType),
		)
		converted = h.engine.RenderFallbackRecipe(
			req.RecipeText, req.ConversionType, req.ScaleFactor,
			req.HumidityAdjust, req.ProMode,
		)
	}

	// 保存轉換歷史；失敗只記錄不影響回應
	if saveErr := h.store.SaveConversionHistory(c.Request.Context(), &persistence.ConversionHistory{
		OriginalRecipe:  req.RecipeText,
		ConvertedRecipe: converted,
		ConversionType:  req.ConversionType,
		ScaleFactor:     req.ScaleFactor,
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
	}); saveErr != nil {
		common.LogWarn("無法保存轉換歷史", zap.Error(saveErr))
	}

	c.JSON(http.StatusOK, gin.H{
		"convertedRecipe": converted,
		"success":         true,
	})
}
