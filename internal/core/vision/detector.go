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

// Detection 탐지된 객체 하나
type Detection struct {
	Class      string  `json:"class"`
	Confidence float64 `json:"confidence"`
}

// DetectorClient 객체 탐지 협력 서비스 클라이언트.
// 신뢰도 임계값 이상의 라벨만 돌려준다.
type DetectorClient struct {
	cfg    *config.DetectionConfig
	client *resty.Client
}

// NewDetectorClient 탐지 클라이언트 생성
func NewDetectorClient(cfg *config.DetectionConfig) *DetectorClient {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout)

	return &DetectorClient{
		cfg:    cfg,
		client: client,
	}
}

// Detect 이미지에서 객체 탐지. 서비스가 비활성화되어 있으면 빈 목록.
func (c *DetectorClient) Detect(ctx context.Context, imageData string) ([]Detection, error) {
	if !c.cfg.Enabled {
		return nil, nil
	}

	req := map[string]interface{}{
		"image":     imageData,
		"threshold": c.cfg.Threshold,
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/detect")

	if err != nil {
		return nil, fmt.Errorf("failed to send request to detection service: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("detection service returned error: status %d", resp.StatusCode())
	}

	var result struct {
		Objects []Detection `json:"objects"`
	}
	if err := common.ParseJSONBytes(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to parse detection response: %w", err)
	}

	// 임계값은 서비스 쪽에서도 적용하지만 응답에서 한 번 더 거른다
	filtered := make([]Detection, 0, len(result.Objects))
	for _, obj := range result.Objects {
		if obj.Confidence >= c.cfg.Threshold {
			filtered = append(filtered, obj)
		}
	}

	common.LogDebug("객체 탐지 완료",
		zap.Int("detected", len(result.Objects)),
		zap.Int("above_threshold", len(filtered)),
	)
	return filtered, nil
}
