package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 애플리케이션 설정
type Config struct {
	App         AppConfig        `mapstructure:"app"`
	Server      ServerConfig     `mapstructure:"server"`
	OCR         OCRConfig        `mapstructure:"ocr"`
	Detection   DetectionConfig  `mapstructure:"detection"`
	OpenRouter  OpenRouterConfig `mapstructure:"openrouter"`
	Cache       CacheConfig      `mapstructure:"cache"`
	RateLimit   RateLimitConfig  `mapstructure:"rate_limit"`
	Redis       RedisConfig      `mapstructure:"redis"`
	Batch       BatchConfig      `mapstructure:"batch"`
	Image       ImageConfig      `mapstructure:"image"`
	DedupWindow time.Duration    `mapstructure:"dedup_window"`
	LogLevel    string           `mapstructure:"log_level"`
}

// AppConfig 애플리케이션 기본 설정
type AppConfig struct {
	Env      string `mapstructure:"env"`
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
	Version  string `mapstructure:"version"`
	Name     string `mapstructure:"name"`
}

// ServerConfig 서버 설정
type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// OCRConfig OCR 협력 서비스 설정
type OCRConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// DetectionConfig 객체 탐지 협력 서비스 설정
type DetectionConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	BaseURL   string        `mapstructure:"base_url"`
	Threshold float64       `mapstructure:"threshold"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// OpenRouterConfig 외부 추론 서비스(OpenRouter) 설정
type OpenRouterConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	APIKey    string        `mapstructure:"api_key"`
	Model     string        `mapstructure:"model"`
	MaxTokens int           `mapstructure:"max_tokens"`
	Timeout   time.Duration `mapstructure:"timeout"`
	// MinInterval 연속 추론 호출 사이 최소 간격 (할당량 보호)
	MinInterval time.Duration `mapstructure:"min_interval"`
}

// CacheConfig 추론 응답 캐시 설정
type CacheConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	MaxSize         int           `mapstructure:"max_size"`
	TTL             time.Duration `mapstructure:"ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// RateLimitConfig 요청 속도 제한 설정
type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// RedisConfig 인벤토리 저장소(Redis) 설정
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// BatchConfig 일괄 분석 설정
type BatchConfig struct {
	// Delay 이미지 사이의 고정 지연 (협력 서비스 속도 제한 준수)
	Delay     time.Duration `mapstructure:"delay"`
	MaxImages int           `mapstructure:"max_images"`
}

// ImageConfig 이미지 설정
type ImageConfig struct {
	MaxSizeBytes int64 `mapstructure:"max_size_bytes"`
}

// LoadConfig 설정 로드
func LoadConfig() (*Config, error) {
	// .env 파일 로드 (없어도 환경 변수와 기본값으로 동작한다)
	_ = godotenv.Load()

	// 기본값 설정
	setDefaults()

	// 환경 변수 접두사 설정
	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// 환경 변수 바인딩
	viper.BindEnv("openrouter.api_key", "OPENROUTER_API_KEY")
	viper.BindEnv("openrouter.model", "OPENROUTER_MODEL")
	viper.BindEnv("openrouter.max_tokens", "MODEL_MAX_TOKENS")
	viper.BindEnv("ocr.base_url", "OCR_BASE_URL")
	viper.BindEnv("ocr.api_key", "OCR_API_KEY")
	viper.BindEnv("detection.base_url", "DETECTION_BASE_URL")
	viper.BindEnv("detection.threshold", "DETECTION_THRESHOLD")
	viper.BindEnv("redis.addr", "REDIS_ADDR")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")
	viper.BindEnv("cache.enabled", "CACHE_ENABLED")
	viper.BindEnv("rate_limit.enabled", "RATE_LIMIT_ENABLED")
	viper.BindEnv("rate_limit.requests", "RATE_LIMIT_REQUESTS")
	viper.BindEnv("rate_limit.window", "RATE_LIMIT_WINDOW")
	viper.BindEnv("batch.delay", "BATCH_DELAY")
	viper.BindEnv("dedup_window", "DEDUP_WINDOW")
	viper.BindEnv("log_level", "LOG_LEVEL")

	// 설정 파일 이름과 경로
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	// 설정 파일 읽기
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// 디버그 출력 (logger 초기화 전이므로 fmt.Println 사용)
	fmt.Println("Loading configuration",
		"openrouter_api_key:", maskAPIKey(viper.GetString("openrouter.api_key")),
		"openrouter_model:", viper.GetString("openrouter.model"),
		"redis_addr:", viper.GetString("redis.addr"))

	// 설정 파싱
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 필수 설정 검증
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// maskAPIKey API Key 마스킹, 앞뒤 4자만 표시
func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

// setDefaults 기본값 설정
func setDefaults() {
	// 애플리케이션 설정
	viper.SetDefault("app.env", "development")
	viper.SetDefault("app.debug", true)
	viper.SetDefault("app.log_level", "info")
	viper.SetDefault("app.version", "1.0.0")
	viper.SetDefault("app.name", "fridge-inventory")

	// 서버 설정
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "120s")

	// OCR 설정
	viper.SetDefault("ocr.enabled", true)
	viper.SetDefault("ocr.base_url", "http://localhost:9200")
	viper.SetDefault("ocr.timeout", "30s")

	// 객체 탐지 설정
	viper.SetDefault("detection.enabled", true)
	viper.SetDefault("detection.base_url", "http://localhost:9300")
	viper.SetDefault("detection.threshold", 0.5)
	viper.SetDefault("detection.timeout", "30s")

	// OpenRouter 설정
	viper.SetDefault("openrouter.enabled", false)
	viper.SetDefault("openrouter.model", "qwen/qwen2.5-vl-72b-instruct:free")
	viper.SetDefault("openrouter.max_tokens", 1000)
	viper.SetDefault("openrouter.timeout", "60s")
	viper.SetDefault("openrouter.min_interval", "1s")

	// 캐시 설정
	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.max_size", 1000)
	viper.SetDefault("cache.ttl", "24h")
	viper.SetDefault("cache.cleanup_interval", "10m")

	// 저장소 설정
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// 일괄 분석 설정
	viper.SetDefault("batch.delay", "2s")
	viper.SetDefault("batch.max_images", 10)

	// 제한 설정
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests", 100)
	viper.SetDefault("rate_limit.window", "1m")

	// 이미지 설정
	viper.SetDefault("image.max_size_bytes", 10*1024*1024) // 10MB

	// 중복 요청 윈도우 기본값
	viper.SetDefault("dedup_window", "1s")
}

// validateConfig 설정 검증
func validateConfig(config *Config) error {
	// 서버 설정 검증
	if config.Server.Port == 0 {
		return fmt.Errorf("server port is required")
	}

	// 캐시 설정 검증
	if config.Cache.Enabled {
		if config.Cache.MaxSize <= 0 {
			return fmt.Errorf("invalid cache max size")
		}
		if config.Cache.TTL <= 0 {
			return fmt.Errorf("invalid cache ttl")
		}
		if config.Cache.CleanupInterval <= 0 {
			return fmt.Errorf("invalid cache cleanup interval")
		}
	}

	// 탐지 임계값 검증
	if config.Detection.Threshold < 0 || config.Detection.Threshold > 1 {
		return fmt.Errorf("invalid detection threshold")
	}

	// 일괄 분석 설정 검증
	if config.Batch.MaxImages <= 0 {
		return fmt.Errorf("invalid batch max images")
	}
	if config.Batch.Delay < 0 {
		return fmt.Errorf("invalid batch delay")
	}

	return nil
}
