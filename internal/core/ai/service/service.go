package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"precise-baker/internal/core/ai/cache"
	"precise-baker/internal/core/ai/gemini"
	"precise-baker/internal/core/image"
	"precise-baker/internal/infrastructure/config"
	"precise-baker/internal/pkg/common"

	"go.uber.org/zap"
)

// Response AI 回應
type Response struct {
	Content  string
	CacheHit bool
}

// Service AI 服務。統一處理提示詞正規化、圖片前處理、
// 快取查詢與 Gemini 調用。
type Service struct {
	config      *config.Config
	gemini      *gemini.Client
	cache       cache.Cache
	imageSvc    *image.Service
	mu          sync.Mutex
	lastRequest time.Time
}

// NewService 創建 AI 服務
func NewService(cfg *config.Config, aiCache cache.Cache) *Service {
	return &Service{
		config:   cfg,
		gemini:   gemini.NewClient(cfg),
		cache:    aiCache,
		imageSvc: image.NewService(cfg.Image.MaxSizeBytes),
	}
}

// ProcessRequest 統一對外方法
func (s *Service) ProcessRequest(ctx context.Context, prompt, imageData string) (*Response, error) {
	if err := s.checkRequestRate(); err != nil {
		return nil, err
	}

	// 統一 prompt 格式：連續空白合併為一格，確保快取鍵一致
	prompt = normalizePrompt(prompt)

	var processedImageData string
	if imageData != "" {
		var err error
		processedImageData, err = s.imageSvc.Process(imageData)
		if err != nil {
			return nil, fmt.Errorf("failed to process image: %w", err)
		}
	}

	// 檢查快取
	if s.cache != nil {
		if val, err := s.cache.Get(ctx, prompt, processedImageData); err == nil && val != "" {
			return &Response{Content: val, CacheHit: true}, nil
		}
	}

	content, err := s.gemini.Generate(ctx, prompt, processedImageData)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, prompt, processedImageData, content); err != nil {
			common.LogWarn("無法寫入快取", zap.Error(err))
		}
	}

	return &Response{Content: content}, nil
}

// normalizePrompt 去除前後空白並將連續空白合併為一格
func normalizePrompt(prompt string) string {
	return strings.Join(strings.Fields(prompt), " ")
}

// checkRequestRate 檢查對 AI 供應商的請求間隔
func (s *Service) checkRequestRate() error {
	if !s.config.RateLimit.Enabled {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	minInterval := s.config.RateLimit.Window / time.Duration(s.config.RateLimit.Requests)
	if now.Sub(s.lastRequest) < minInterval {
		return common.ErrTooManyRequests
	}

	s.lastRequest = now
	return nil
}

// Close 釋放持有的資源
func (s *Service) Close() error {
	return s.gemini.Close()
}
