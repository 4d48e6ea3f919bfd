package cache

import (
	"testing"
	"time"

	"fridge-inventory/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCacheConfig() *config.CacheConfig {
	return &config.CacheConfig{
		Enabled:         true,
		MaxSize:         2,
		TTL:             time.Hour,
		CleanupInterval: time.Hour,
	}
}

func TestManager_GetSet(t *testing.T) {
	m := NewManager(testCacheConfig())
	require.NotNil(t, m)
	defer m.Close()

	t.Run("적중과 미적중", func(t *testing.T) {
		_, ok := m.Get("prompt")
		assert.False(t, ok)

		m.Set("prompt", "answer")
		got, ok := m.Get("prompt")
		assert.True(t, ok)
		assert.Equal(t, "answer", got)
	})

	t.Run("용량 초과 시 LRU 축출", func(t *testing.T) {
		m.Set("a", "1")
		m.Set("b", "2")
		// "prompt" 는 직전에 접근되어 접근 횟수가 가장 높다
		m.Set("c", "3")

		_, ok := m.Get("c")
		assert.True(t, ok)
	})
}

func TestManager_TTL(t *testing.T) {
	cfg := testCacheConfig()
	cfg.TTL = 10 * time.Millisecond
	m := NewManager(cfg)
	require.NotNil(t, m)
	defer m.Close()

	m.Set("prompt", "answer")
	time.Sleep(20 * time.Millisecond)

	_, ok := m.Get("prompt")
	assert.False(t, ok)
}

func TestManager_Disabled(t *testing.T) {
	m := NewManager(&config.CacheConfig{Enabled: false})
	assert.Nil(t, m)

	// nil 매니저도 모든 연산이 안전해야 한다
	m.Set("prompt", "answer")
	_, ok := m.Get("prompt")
	assert.False(t, ok)
	assert.Equal(t, false, m.Stats()["enabled"])
	assert.NoError(t, m.Close())
}
