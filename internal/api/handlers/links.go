package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"precise-baker/internal/infrastructure/persistence"
	"precise-baker/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LinkHandler 社群連結處理器
type LinkHandler struct {
	store persistence.Store
}

// NewLinkHandler 創建社群連結處理器
func NewLinkHandler(store persistence.Store) *LinkHandler {
	return &LinkHandler{store: store}
}

// List 查詢社群連結，可用 ?userId 過濾
func (h *LinkHandler) List(c *gin.Context) {
	userID, ok := optionalUintQuery(c, "userId")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid userId"})
		return
	}

	links, err := h.store.SocialLinks(c.Request.Context(), userID)
	if err != nil {
		common.LogError("查詢社群連結失敗", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch social links"})
		return
	}

	c.JSON(http.StatusOK, links)
}

// Create 創建社群連結
func (h *LinkHandler) Create(c *gin.Context) {
	var link persistence.SocialLink
	if err := c.ShouldBindJSON(&link); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid social link data"})
		return
	}
	link.ID = 0

	if link.Platform == "" || link.Username == "" || link.URL == "" || link.IconClass == "" || link.BgColorClass == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid social link data"})
		return
	}

	if err := h.store.CreateSocialLink(c.Request.Context(), &link); err != nil {
		common.LogError("創建社群連結失敗", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create social link"})
		return
	}

	c.JSON(http.StatusCreated, link)
}

// Update 部分更新社群連結
func (h *LinkHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Social link not found"})
		return
	}

	var updates persistence.SocialLinkUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid social link data"})
		return
	}

	link, err := h.store.UpdateSocialLink(c.Request.Context(), id, updates)
	if err != nil {
		if errors.Is(err, persistence.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Social link not found"})
			return
		}
		common.LogError("更新社群連結失敗", zap.Error(err), zap.Uint("id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update social link"})
		return
	}

	c.JSON(http.StatusOK, link)
}

// Delete 刪除社群連結
func (h *LinkHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Social link not found"})
		return
	}

	if err := h.store.DeleteSocialLink(c.Request.Context(), id); err != nil {
		if errors.Is(err, persistence.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Social link not found"})
			return
		}
		common.LogError("刪除社群連結失敗", zap.Error(err), zap.Uint("id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete social link"})
		return
	}

	c.Status(http.StatusNoContent)
}

// pathID 解析路徑中的 :id
func pathID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// optionalUintQuery 解析可選的數字查詢參數，缺省時回傳 nil
func optionalUintQuery(c *gin.Context, name string) (*uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, false
	}
	u := uint(v)
	return &u, true
}
