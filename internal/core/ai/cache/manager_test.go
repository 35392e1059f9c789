package cache

import (
	"context"
	"testing"
	"time"

	"precise-baker/internal/infrastructure/config"
	"precise-baker/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T, maxSize int, ttl time.Duration) *Manager {
	t.Helper()

	cfg := &config.Config{}
	cfg.Cache.Enabled = true
	cfg.Cache.MaxSize = maxSize
	cfg.Cache.TTL = ttl
	cfg.Cache.CleanupInterval = time.Hour

	m := NewManager(cfg)
	require.NotNil(t, m)
	t.Cleanup(func() { _ = m.Close() })
	return m
}

func TestManagerGetSet(t *testing.T) {
	m := newTestManager(t, 10, time.Minute)
	ctx := context.Background()

	_, err := m.Get(ctx, "prompt", "")
	assert.ErrorIs(t, err, common.ErrCacheMiss)

	require.NoError(t, m.Set(ctx, "prompt", "", "answer"))

	got, err := m.Get(ctx, "prompt", "")
	require.NoError(t, err)
	assert.Equal(t, "answer", got)

	// 不同圖片資料是不同的鍵
	_, err = m.Get(ctx, "prompt", "img-bytes")
	assert.ErrorIs(t, err, common.ErrCacheMiss)
}

func TestManagerExpiry(t *testing.T) {
	m := newTestManager(t, 10, 10*time.Millisecond)
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "prompt", "", "answer"))
	time.Sleep(30 * time.Millisecond)

	_, err := m.Get(ctx, "prompt", "")
	assert.ErrorIs(t, err, common.ErrCacheMiss)
}

func TestManagerEvictsLRUWhenFull(t *testing.T) {
	m := newTestManager(t, 2, time.Minute)
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "a", "", "1"))
	require.NoError(t, m.Set(ctx, "b", "", "2"))

	// 訪問 a，讓 b 成為最少使用的項目
	_, err := m.Get(ctx, "a", "")
	require.NoError(t, err)

	require.NoError(t, m.Set(ctx, "c", "", "3"))

	_, err = m.Get(ctx, "b", "")
	assert.ErrorIs(t, err, common.ErrCacheMiss)

	got, err := m.Get(ctx, "a", "")
	require.NoError(t, err)
	assert.Equal(t, "1", got)
}

func TestManagerDisabled(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cache.Enabled = false
	assert.Nil(t, NewManager(cfg))
}

func TestManagerStats(t *testing.T) {
	m := newTestManager(t, 10, time.Minute)
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "a", "", "1"))
	_, _ = m.Get(ctx, "a", "")
	_, _ = m.Get(ctx, "missing", "")

	stats := m.Stats()
	assert.Equal(t, "memory", stats["backend"])
	assert.Equal(t, int64(1), stats["hits"])
	assert.Equal(t, int64(1), stats["misses"])
}
