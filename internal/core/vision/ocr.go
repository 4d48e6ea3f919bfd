package vision

import (
	"context"
	"fmt"
	"net/http"

	"fridge-inventory/internal/infrastructure/config"
	"fridge-inventory/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// OCRClient OCR 협력 서비스 클라이언트. 이미지에서 텍스트를 추출한다.
// 실패는 파이프라인을 중단시키지 않으며, 호출자는 텍스트 없음으로 처리한다.
type OCRClient struct {
	cfg    *config.OCRConfig
	client *resty.Client
}

// NewOCRClient OCR 클라이언트 생성
func NewOCRClient(cfg *config.OCRConfig) *OCRClient {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout)
	if cfg.APIKey != "" {
		client.SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.APIKey))
	}

	return &OCRClient{
		cfg:    cfg,
		client: client,
	}
}

// ExtractText 이미지에서 텍스트 추출. 서비스가 비활성화되어 있으면 빈 텍스트.
func (c *OCRClient) ExtractText(ctx context.Context, imageData string) (string, error) {
	if !c.cfg.Enabled {
		return "", nil
	}

	req := map[string]interface{}{
		"image": imageData,
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/ocr")

	if err != nil {
		return "", fmt.Errorf("failed to send request to OCR service: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("OCR service returned error: status %d", resp.StatusCode())
	}

	var result struct {
		Text string `json:"text"`
	}
	if err := common.ParseJSONBytes(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("failed to parse OCR response: %w", err)
	}

	common.LogDebug("OCR 추출 완료",
		zap.Int("text_length", len(result.Text)),
	)
	return result.Text, nil
}
