package handlers

import (
	"errors"
	"net/http"

	"precise-baker/internal/infrastructure/persistence"
	"precise-baker/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecipeHandler 食譜 CRUD 處理器
type RecipeHandler struct {
	store persistence.Store
}

// NewRecipeHandler 創建食譜處理器
func NewRecipeHandler(store persistence.Store) *RecipeHandler {
	return &RecipeHandler{store: store}
}

// List 查詢食譜，可用 ?userId 與 ?featured 過濾
func (h *RecipeHandler) List(c *gin.Context) {
	userID, ok := optionalUintQuery(c, "userId")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid userId"})
		return
	}

	var featured *bool
	if raw := c.Query("featured"); raw != "" {
		v := raw == "true"
		featured = &v
	}

	recipes, err := h.store.Recipes(c.Request.Context(), userID, featured)
	if err != nil {
		common.LogError("查詢食譜失敗", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch recipes"})
		return
	}

	c.JSON(http.StatusOK, recipes)
}

// Get 依 ID 查詢食譜
func (h *RecipeHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Recipe not found"})
		return
	}

	rec, err := h.store.Recipe(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, persistence.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Recipe not found"})
			return
		}
		common.LogError("查詢食譜失敗", zap.Error(err), zap.Uint("id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch recipe"})
		return
	}

	c.JSON(http.StatusOK, rec)
}

// Create 創建食譜
func (h *RecipeHandler) Create(c *gin.Context) {
	var rec persistence.Recipe
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid recipe data"})
		return
	}
	rec.ID = 0

	if rec.Title == "" || rec.Description == "" || rec.Instructions == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid recipe data"})
		return
	}

	if err := h.store.CreateRecipe(c.Request.Context(), &rec); err != nil {
		common.LogError("創建食譜失敗", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create recipe"})
		return
	}

	c.JSON(http.StatusCreated, rec)
}

// Update 部分更新食譜
func (h *RecipeHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Recipe not found"})
		return
	}

	var updates persistence.RecipeUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid recipe data"})
		return
	}

	rec, err := h.store.UpdateRecipe(c.Request.Context(), id, updates)
	if err != nil {
		if errors.Is(err, persistence.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Recipe not found"})
			return
		}
		common.LogError("更新食譜失敗", zap.Error(err), zap.Uint("id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update recipe"})
		return
	}

	c.JSON(http.StatusOK, rec)
}

// Delete 刪除食譜
func (h *RecipeHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Recipe not found"})
		return
	}

	if err := h.store.DeleteRecipe(c.Request.Context(), id); err != nil {
		if errors.Is(err, persistence.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Recipe not found"})
			return
		}
		common.LogError("刪除食譜失敗", zap.Error(err), zap.Uint("id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete recipe"})
		return
	}

	c.Status(http.StatusNoContent)
}
