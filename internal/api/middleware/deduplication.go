package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fridge-inventory/internal/infrastructure/config"
	"fridge-inventory/internal/pkg/common"
)

var (
	// 중복 판정용 요청 캐시
	requestCache = struct {
		sync.RWMutex
		requests map[string]time.Time
	}{
		requests: make(map[string]time.Time),
	}

	cleanupOnce sync.Once
)

// startDeduplicationCleanup 오래된 요청 해시 정리 고루틴 (한 번만 기동)
func startDeduplicationCleanup(window time.Duration) {
	cleanupOnce.Do(func() {
		go func() {
			ticker := time.NewTicker(10 * time.Minute)
			defer ticker.Stop()
			for range ticker.C {
				cutoff := time.Now().Add(-window)
				requestCache.Lock()
				for key, seen := range requestCache.requests {
					if seen.Before(cutoff) {
						delete(requestCache.requests, key)
					}
				}
				requestCache.Unlock()
			}
		}()
	})
}

// Deduplication 같은 본문의 분석 요청이 짧은 윈도우 안에 반복되면 거부한다.
// 이미지 분석은 비싸므로 더블 탭/재전송으로 인한 중복 호출을 막는다.
func Deduplication(cfg *config.Config) gin.HandlerFunc {
	window := time.Second
	if cfg != nil && cfg.DedupWindow > 0 {
		window = cfg.DedupWindow
	}
	startDeduplicationCleanup(window)

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost || c.Request.Body == nil {
			c.Next()
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.Next()
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		hash := sha256.Sum256(body)
		key := c.Request.URL.Path + ":" + hex.EncodeToString(hash[:])

		now := time.Now()
		requestCache.Lock()
		seen, exists := requestCache.requests[key]
		duplicate := exists && now.Sub(seen) < window
		if !duplicate {
			requestCache.requests[key] = now
		}
		requestCache.Unlock()

		if duplicate {
			common.LogWarn("중복 요청 거부",
				zap.String("path", c.Request.URL.Path),
				zap.Duration("window", window),
			)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Duplicate request",
			})
			return
		}

		c.Next()
	}
}
