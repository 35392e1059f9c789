package handlers

import (
	"net/http"
	"time"

	"precise-baker/internal/infrastructure/persistence"
	"precise-baker/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HistoryHandler 轉換歷史處理器
type HistoryHandler struct {
	store persistence.Store
}

// NewHistoryHandler 創建轉換歷史處理器
func NewHistoryHandler(store persistence.Store) *HistoryHandler {
	return &HistoryHandler{store: store}
}

// List 查詢轉換歷史，可用 ?userId 過濾
func (h *HistoryHandler) List(c *gin.Context) {
	userID, ok := optionalUintQuery(c, "userId")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid userId"})
		return
	}

	items, err := h.store.ConversionHistories(c.Request.Context(), userID)
	if err != nil {
		common.LogError("查詢轉換歷史失敗", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch conversion history"})
		return
	}

	c.JSON(http.StatusOK, items)
}

// Create 保存轉換歷史
func (h *HistoryHandler) Create(c *gin.Context) {
	var item persistence.ConversionHistory
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid conversion history data"})
		return
	}
	item.ID = 0

	if item.OriginalRecipe == "" || item.ConvertedRecipe == "" || item.ConversionType == "" || item.ScaleFactor == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid conversion history data"})
		return
	}
	if item.Timestamp == "" {
		item.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	if err := h.store.SaveConversionHistory(c.Request.Context(), &item); err != nil {
		common.LogError("保存轉換歷史失敗", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save conversion history"})
		return
	}

	c.JSON(http.StatusCreated, item)
}
