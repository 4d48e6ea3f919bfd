package health

import (
	"net/http"
	"runtime"
	"time"

	"fridge-inventory/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

// HealthResponse 헬스 체크 응답
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Runtime   map[string]interface{} `json:"runtime"`
	Cache     map[string]interface{} `json:"cache,omitempty"`
}

// CacheStats 캐시 통계 제공자
type CacheStats interface {
	Stats() map[string]interface{}
}

// HealthCheck 헬스 체크 핸들러
func HealthCheck(cfg *config.Config, cacheStats CacheStats) gin.HandlerFunc {
	return func(c *gin.Context) {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		response := HealthResponse{
			Status:    "ok",
			Timestamp: time.Now(),
			Version:   cfg.App.Version,
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
		if cacheStats != nil {
			response.Cache = cacheStats.Stats()
		}

		c.JSON(http.StatusOK, response)
	}
}

// LivenessCheck 생존 확인 핸들러
func LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}
