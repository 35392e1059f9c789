package health

import (
	"net/http"
	"runtime"
	"time"

	"precise-baker/internal/core/ai/cache"
	"precise-baker/internal/infrastructure/config"
	"precise-baker/internal/infrastructure/persistence"
	"precise-baker/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Response 健康檢查響應
type Response struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Runtime   map[string]interface{} `json:"runtime"`
	Cache     map[string]interface{} `json:"cache,omitempty"`
}

// Handler 健康檢查處理器
type Handler struct {
	config  *config.Config
	store   persistence.Store
	aiCache cache.Cache
}

// NewHandler 創建健康檢查處理器
func NewHandler(cfg *config.Config, store persistence.Store, aiCache cache.Cache) *Handler {
	return &Handler{
		config:  cfg,
		store:   store,
		aiCache: aiCache,
	}
}

// Check 健康檢查
func (h *Handler) Check(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	response := Response{
		Status:    "ok",
		Timestamp: time.Now(),
		Version:   h.config.App.Version,
		Runtime: map[string]interface{}{
			"goroutines": runtime.NumGoroutine(),
			"memory": map[string]interface{}{
				"alloc":       m.Alloc,
				"total_alloc": m.TotalAlloc,
				"sys":         m.Sys,
				"num_gc":      m.NumGC,
			},
		},
	}

	if h.aiCache != nil {
		response.Cache = h.aiCache.Stats()
	}

	common.LogDebug("Health check request",
		zap.String("client_ip", c.ClientIP()),
		zap.String("path", c.Request.URL.Path),
	)

	c.JSON(http.StatusOK, response)
}

// Ready 就緒檢查，包含資料庫連線
func (h *Handler) Ready(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		common.LogError("資料庫就緒檢查失敗", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not ready",
			"error":  "database unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
	})
}

// Live 存活檢查
func (h *Handler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}
