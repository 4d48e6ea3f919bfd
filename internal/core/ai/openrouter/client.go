package openrouter

import (
	"context"
	"fmt"
	"net/http"

	"fridge-inventory/internal/infrastructure/config"
	"fridge-inventory/internal/pkg/common"

	"github.com/go-resty/resty/v2"
)

const baseURL = "https://openrouter.ai/api/v1"

// Client OpenRouter API 클라이언트. 외부 추론 협력 서비스와의 유일한 접점이다.
type Client struct {
	cfg    *config.OpenRouterConfig
	client *resty.Client
}

// NewClient OpenRouter 클라이언트 생성
func NewClient(cfg *config.OpenRouterConfig) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.APIKey)).
		SetHeader("HTTP-Referer", "https://fridge-inventory.app").
		SetHeader("X-Title", "Fridge Inventory")

	return &Client{
		cfg:    cfg,
		client: client,
	}
}

// Generate 프롬프트에 대한 응답 생성. 429(할당량 초과)는 전용 에러로 구분하지만
// 호출자는 이를 "응답 없음"과 동일하게 취급해야 한다.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	req := map[string]interface{}{
		"model": c.cfg.Model,
		"messages": []map[string]interface{}{
			{
				"role":    "user",
				"content": prompt,
			},
		},
		"max_tokens": c.cfg.MaxTokens,
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/chat/completions")

	if err != nil {
		return "", fmt.Errorf("failed to send request to OpenRouter: %w", err)
	}

	if resp.StatusCode() == http.StatusTooManyRequests {
		return "", fmt.Errorf("%w: %s", common.ErrReasoningQuota, resp.Status())
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("OpenRouter API returned error: status %d", resp.StatusCode())
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := common.ParseJSONBytes(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("failed to parse OpenRouter response: %w", err)
	}

	if len(result.Choices) == 0 {
		return "", fmt.Errorf("no choices in OpenRouter response")
	}
	content := result.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("empty content in OpenRouter response")
	}
	return content, nil
}
