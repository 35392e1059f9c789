package api

import (
	"time"

	"precise-baker/internal/api/handlers"
	"precise-baker/internal/api/handlers/health"
	"precise-baker/internal/api/middleware"
	"precise-baker/internal/core/ai/cache"
	aiservice "precise-baker/internal/core/ai/service"
	"precise-baker/internal/core/convert"
	recipeservice "precise-baker/internal/core/recipe"
	"precise-baker/internal/infrastructure/config"
	"precise-baker/internal/infrastructure/persistence"
	"precise-baker/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, store persistence.Store, aiCache cache.Cache) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// 基礎中間件
	router.Use(middleware.Recovery())
	router.Use(requestid.New())
	router.Use(middleware.Logger())

	// CORS 設置
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 請求體大小限制
	router.Use(middleware.BodySizeLimit(cfg.Image.MaxSizeBytes + 1<<20))

	// 初始化服務
	aiSvc := aiservice.NewService(cfg, aiCache)
	recipeSvc := recipeservice.NewService(aiSvc)
	engine := convert.NewEngine()

	common.LogInfo("Services initialized",
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.String("model", cfg.Gemini.Model),
		zap.String("vision_model", cfg.Gemini.VisionModel),
	)

	// 初始化處理器
	convertHandler := handlers.NewConvertHandler(engine, recipeSvc, store)
	generateHandler := handlers.NewGenerateHandler(recipeSvc)
	linkHandler := handlers.NewLinkHandler(store)
	recipeHandler := handlers.NewRecipeHandler(store)
	historyHandler := handlers.NewHistoryHandler(store)
	healthHandler := health.NewHandler(cfg, store, aiCache)

	// 健康檢查路由
	router.GET("/health", healthHandler.Check)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)

	// API 路由組
	api := router.Group("/api")
	{
		// 本地量測轉換
		api.POST("/convert-measurement", convertHandler.ConvertMeasurement)

		// AI 路由：去重加限流，避免重複觸發上游調用
		ai := api.Group("")
		ai.Use(middleware.Deduplication(cfg))
		if cfg.RateLimit.Enabled {
			ai.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
		}
		{
			ai.POST("/convert-recipe", convertHandler.ConvertRecipe)
			ai.POST("/photo-to-recipe", generateHandler.PhotoToRecipe)
			ai.POST("/generate-recipe", generateHandler.GenerateRecipe)
			ai.POST("/generate-from-ingredients", generateHandler.GenerateFromIngredients)
		}

		// 社群連結
		api.GET("/social-links", linkHandler.List)
		api.POST("/social-links", linkHandler.Create)
		api.PUT("/social-links/:id", linkHandler.Update)
		api.DELETE("/social-links/:id", linkHandler.Delete)

		// 食譜
		api.GET("/recipes", recipeHandler.List)
		api.GET("/recipes/:id", recipeHandler.Get)
		api.POST("/recipes", recipeHandler.Create)
		api.PUT("/recipes/:id", recipeHandler.Update)
		api.DELETE("/recipes/:id", recipeHandler.Delete)

		// 轉換歷史
		api.GET("/conversion-history", historyHandler.List)
		api.POST("/conversion-history", historyHandler.Create)
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	return router, nil
}
