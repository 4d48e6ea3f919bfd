package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"fridge-inventory/internal/api/handlers/health"
	"fridge-inventory/internal/api/handlers/pantry"
	"fridge-inventory/internal/api/middleware"
	"fridge-inventory/internal/core/ai"
	"fridge-inventory/internal/core/ai/cache"
	"fridge-inventory/internal/core/analysis"
	"fridge-inventory/internal/core/catalog"
	"fridge-inventory/internal/core/inventory"
	"fridge-inventory/internal/core/vision"
	"fridge-inventory/internal/infrastructure/config"
	"fridge-inventory/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// 요청 전체 타임아웃. 일괄 분석은 이미지 사이 지연이 있어 넉넉히 잡는다.
	timeoutDuration = 120 * time.Second
)

// SetupRouter 라우터와 서비스 의존성을 조립한다.
func SetupRouter(cfg *config.Config, cacheManager *cache.Manager, store *inventory.Store) (*gin.Engine, error) {
	common.LogInfo("라우터 설정 시작",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.BodySizeLimit(cfg.Image.MaxSizeBytes * 2))

	// 서비스 초기화
	aiService := ai.NewService(&cfg.OpenRouter, cacheManager)

	ocrClient := vision.NewOCRClient(&cfg.OCR)
	detectorClient := vision.NewDetectorClient(&cfg.Detection)
	formatter := vision.NewFormatter(cfg.Image.MaxSizeBytes)

	cat := catalog.Default()

	analysisService := analysis.NewService(cfg, ocrClient, detectorClient, aiService, cat)
	if analysisService == nil {
		common.LogError("분석 서비스 초기화 실패")
		return nil, fmt.Errorf("failed to initialize analysis service")
	}

	common.LogInfo("서비스 초기화 완료",
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.Bool("ocr_enabled", cfg.OCR.Enabled),
		zap.Bool("detection_enabled", cfg.Detection.Enabled),
		zap.Bool("reasoning_enabled", cfg.OpenRouter.Enabled),
		zap.String("model", cfg.OpenRouter.Model),
	)

	// 요청 타임아웃
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("요청 타임아웃",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
				zap.Duration("timeout", timeoutDuration),
			)
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  "REQUEST_TIMEOUT",
			})
			c.Abort()
		}
	})

	// 헬스 체크
	router.GET("/health", health.HealthCheck(cfg, cacheManager))
	router.GET("/live", health.LivenessCheck)

	api := router.Group("/api/v1")
	{
		analyzeGroup := api.Group("/analyze")
		if cfg.RateLimit.Enabled {
			analyzeGroup.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
		}
		analyzeGroup.Use(middleware.Deduplication(cfg))
		{
			analyzeGroup.POST("", pantry.HandleAnalyze(analysisService, formatter, store))
			analyzeGroup.POST("/batch", pantry.HandleAnalyzeBatch(analysisService, formatter, store))
		}

		inventoryGroup := api.Group("/inventory")
		{
			inventoryGroup.GET("", pantry.HandleGetInventory(store))
			inventoryGroup.POST("/items", pantry.HandleAddItem(store))
			inventoryGroup.DELETE("/items/:id", pantry.HandleRemoveItem(store))
			inventoryGroup.DELETE("", pantry.HandleClearInventory(store))
		}
	}

	common.LogInfo("라우터 설정 완료",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.Bool("rate_limit_enabled", cfg.RateLimit.Enabled),
		zap.Int64("max_body_size", cfg.Image.MaxSizeBytes*2),
	)

	return router, nil
}
