package ai

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"fridge-inventory/internal/core/ai/cache"
	"fridge-inventory/internal/core/ai/openrouter"
	"fridge-inventory/internal/infrastructure/config"
	"fridge-inventory/internal/pkg/common"
)

// Service 외부 추론 서비스 래퍼. 캐시 확인 → 호출 → 캐시 저장 순서로 처리하고,
// 연속 호출 사이에 최소 간격을 둔다.
type Service struct {
	cfg         *config.OpenRouterConfig
	client      *openrouter.Client
	cache       *cache.Manager
	mu          sync.Mutex
	lastRequest time.Time
}

// NewService 추론 서비스 생성
func NewService(cfg *config.OpenRouterConfig, cacheManager *cache.Manager) *Service {
	return &Service{
		cfg:    cfg,
		client: openrouter.NewClient(cfg),
		cache:  cacheManager,
	}
}

// Reason 프롬프트에 대한 외부 추론 실행. 할당량 초과를 포함한 모든 실패는
// 에러로 반환되며, 호출자는 로컬 폴백으로 진행해야 한다.
func (s *Service) Reason(ctx context.Context, prompt string) (string, error) {
	if !s.cfg.Enabled {
		return "", fmt.Errorf("reasoning service is disabled")
	}

	// 캐시 키 일관성을 위해 프롬프트 공백 정리
	prompt = strings.Join(strings.Fields(strings.TrimSpace(prompt)), " ")

	if value, ok := s.cache.Get(prompt); ok {
		return value, nil
	}

	if err := s.waitInterval(ctx); err != nil {
		return "", err
	}

	start := time.Now()
	content, err := s.client.Generate(ctx, prompt)
	common.LogReasoningCall(time.Since(start), err)
	if err != nil {
		return "", err
	}

	s.cache.Set(prompt, content)
	return content, nil
}

// waitInterval 직전 호출로부터 최소 간격이 지나도록 대기 (할당량 보호)
func (s *Service) waitInterval(ctx context.Context) error {
	s.mu.Lock()
	wait := s.cfg.MinInterval - time.Since(s.lastRequest)
	s.lastRequest = time.Now().Add(wait)
	s.mu.Unlock()

	if wait <= 0 {
		return nil
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
