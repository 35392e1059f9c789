package cache

import (
	"context"
	"fmt"
	"sync/atomic"

	"precise-baker/internal/infrastructure/config"
	"precise-baker/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisCache Redis 快取實作。部署多實例時以 Redis 共享 AI 回應。
type RedisCache struct {
	client *redis.Client
	config *config.CacheConfig
	hits   int64
	misses int64
}

// NewRedisCache 創建 Redis 快取，啟動時驗證連線
func NewRedisCache(cfg *config.CacheConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	// 測試連接
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	common.LogInfo("Redis 快取已初始化",
		zap.String("位址", cfg.RedisAddr),
		zap.Duration("存活時間", cfg.TTL),
	)

	return &RedisCache{
		client: client,
		config: cfg,
	}, nil
}

// Get 獲取快取值。未命中時回傳 ErrCacheMiss。
func (c *RedisCache) Get(ctx context.Context, prompt, imageData string) (string, error) {
	key := "ai:response:" + generateKey(prompt, imageData)

	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			atomic.AddInt64(&c.misses, 1)
			return "", common.ErrCacheMiss
		}
		return "", fmt.Errorf("failed to get cache: %w", err)
	}

	atomic.AddInt64(&c.hits, 1)
	common.LogDebug("快取命中", zap.String("鍵", key))
	return value, nil
}

// Set 設置快取值
func (c *RedisCache) Set(ctx context.Context, prompt, imageData, value string) error {
	key := "ai:response:" + generateKey(prompt, imageData)

	if err := c.client.Set(ctx, key, value, c.config.TTL).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}
	return nil
}

// Stats 獲取快取統計信息
func (c *RedisCache) Stats() map[string]interface{} {
	hits := atomic.LoadInt64(&c.hits)
	misses := atomic.LoadInt64(&c.misses)
	total := hits + misses
	hitRatio := 0.0
	if total > 0 {
		hitRatio = float64(hits) / float64(total)
	}

	return map[string]interface{}{
		"backend":   "redis",
		"addr":      c.config.RedisAddr,
		"hits":      hits,
		"misses":    misses,
		"hit_ratio": hitRatio,
	}
}

// Close 關閉 Redis 連線
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// New 依設定選擇快取後端：redis_addr 有值時用 Redis，否則用內存。
// 快取停用時回傳 nil。
func New(cfg *config.Config) (Cache, error) {
	if !cfg.Cache.Enabled {
		common.LogInfo("Cache disabled")
		return nil, nil
	}
	if cfg.Cache.RedisAddr != "" {
		return NewRedisCache(&cfg.Cache)
	}
	return NewManager(cfg), nil
}
