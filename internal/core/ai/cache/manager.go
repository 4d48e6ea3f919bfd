package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"fridge-inventory/internal/infrastructure/config"
	"fridge-inventory/internal/pkg/common"

	"go.uber.org/zap"
)

// Manager 추론 응답 인메모리 캐시. 같은 텍스트는 같은 답을 주므로
// 외부 추론 할당량을 아끼기 위해 프롬프트 해시로 캐싱한다.
type Manager struct {
	cfg   *config.CacheConfig
	mu    sync.RWMutex
	store map[string]entry
	stats stats
}

// entry 캐시 항목
type entry struct {
	value       string
	expiresAt   time.Time
	createdAt   time.Time
	lastAccess  time.Time
	accessCount int
}

// stats 캐시 통계
type stats struct {
	hits      int64
	misses    int64
	evictions int64
}

// NewManager 캐시 매니저 생성. 비활성화 설정이면 nil 을 반환한다.
func NewManager(cfg *config.CacheConfig) *Manager {
	if !cfg.Enabled {
		common.LogInfo("Cache disabled")
		return nil
	}

	m := &Manager{
		cfg:   cfg,
		store: make(map[string]entry),
	}

	// 만료 항목 정리 고루틴
	go m.startCleanup()

	common.LogInfo("캐시 매니저 초기화 완료",
		zap.Int("최대용량", cfg.MaxSize),
		zap.Duration("TTL", cfg.TTL),
		zap.Duration("정리주기", cfg.CleanupInterval),
	)

	return m
}

// Get 캐시 조회
func (m *Manager) Get(prompt string) (string, bool) {
	if m == nil {
		return "", false
	}

	key := hashKey(prompt)

	m.mu.Lock()
	defer m.mu.Unlock()

	e, exists := m.store[key]
	if !exists {
		m.stats.misses++
		common.LogCacheMiss("reasoning", key)
		return "", false
	}

	if time.Now().After(e.expiresAt) {
		delete(m.store, key)
		m.stats.evictions++
		m.stats.misses++
		common.LogInfo("캐시 만료", zap.String("키", key))
		return "", false
	}

	e.lastAccess = time.Now()
	e.accessCount++
	m.store[key] = e
	m.stats.hits++
	common.LogCacheHit("reasoning", key)
	return e.value, true
}

// Set 캐시 저장. 용량 초과 시 만료 정리 후 LRU 로 비운다.
func (m *Manager) Set(prompt, value string) {
	if m == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.store) >= m.cfg.MaxSize {
		evicted := m.cleanupLocked()
		if evicted > 0 {
			common.LogInfo("캐시 정리 실행", zap.Int("정리수", evicted))
		}
		if len(m.store) >= m.cfg.MaxSize {
			m.evictLRULocked()
		}
		if len(m.store) >= m.cfg.MaxSize {
			common.LogWarn("캐시 가득 참", zap.Int("현재용량", len(m.store)))
			return
		}
	}

	now := time.Now()
	m.store[hashKey(prompt)] = entry{
		value:      value,
		expiresAt:  now.Add(m.cfg.TTL),
		createdAt:  now,
		lastAccess: now,
	}
}

// hashKey 프롬프트의 SHA-256 해시
func hashKey(prompt string) string {
	hash := sha256.Sum256([]byte(prompt))
	return hex.EncodeToString(hash[:])
}

// startCleanup 만료 항목 정리 루프
func (m *Manager) startCleanup() {
	ticker := time.NewTicker(m.cfg.CleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		m.mu.Lock()
		m.cleanupLocked()
		m.mu.Unlock()
	}
}

// cleanupLocked 만료된 항목 삭제. 호출자가 락을 잡고 있어야 한다.
func (m *Manager) cleanupLocked() int {
	now := time.Now()
	count := 0
	for key, e := range m.store {
		if now.After(e.expiresAt) {
			delete(m.store, key)
			count++
			m.stats.evictions++
		}
	}
	return count
}

// evictLRULocked 가장 적게/오래 전에 접근된 항목 하나 제거
func (m *Manager) evictLRULocked() {
	var oldestKey string
	var oldestAccess time.Time
	var lowestCount int

	for key, e := range m.store {
		if oldestKey == "" ||
			e.accessCount < lowestCount ||
			(e.accessCount == lowestCount && e.lastAccess.Before(oldestAccess)) {
			oldestKey = key
			oldestAccess = e.lastAccess
			lowestCount = e.accessCount
		}
	}

	if oldestKey != "" {
		delete(m.store, oldestKey)
		m.stats.evictions++
		common.LogInfo("캐시 축출(LRU)", zap.String("키", oldestKey))
	}
}

// Stats 캐시 통계 조회
func (m *Manager) Stats() map[string]interface{} {
	if m == nil {
		return map[string]interface{}{"enabled": false}
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	total := m.stats.hits + m.stats.misses
	ratio := 0.0
	if total > 0 {
		ratio = float64(m.stats.hits) / float64(total)
	}
	return map[string]interface{}{
		"enabled":   true,
		"size":      len(m.store),
		"max_size":  m.cfg.MaxSize,
		"hits":      m.stats.hits,
		"misses":    m.stats.misses,
		"evictions": m.stats.evictions,
		"hit_ratio": ratio,
	}
}

// Close 캐시 비우기
func (m *Manager) Close() error {
	if m == nil {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.store = make(map[string]entry)
	common.LogInfo("캐시 매니저 종료",
		zap.Int64("적중", m.stats.hits),
		zap.Int64("미적중", m.stats.misses),
		zap.Int64("축출", m.stats.evictions),
	)
	return nil
}
