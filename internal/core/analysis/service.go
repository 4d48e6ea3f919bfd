package analysis

import (
	"context"
	"fmt"
	"sync"
	"time"

	"fridge-inventory/internal/core/catalog"
	"fridge-inventory/internal/core/infer"
	"fridge-inventory/internal/core/inventory"
	"fridge-inventory/internal/core/vision"
	"fridge-inventory/internal/infrastructure/config"
	"fridge-inventory/internal/pkg/common"

	"go.uber.org/zap"
)

// TextExtractor OCR 협력 서비스 계약
type TextExtractor interface {
	ExtractText(ctx context.Context, imageData string) (string, error)
}

// ObjectDetector 객체 탐지 협력 서비스 계약
type ObjectDetector interface {
	Detect(ctx context.Context, imageData string) ([]vision.Detection, error)
}

// BatchResult 일괄 분석에서 이미지 한 장의 결과
type BatchResult struct {
	Index int              `json:"index"`
	Items []inventory.Item `json:"items"`
	Error string           `json:"error,omitempty"`
}

// Service 이미지 분석 오케스트레이터. OCR 텍스트와 탐지 라벨을
// 캐스케이드/라벨 리졸버에 흘려보내 이름이 정해진 항목들을 만든다.
// 단일 분석 플래그가 단건/일괄 분석 진입을 모두 막는다. 대기열은 없다.
type Service struct {
	cfg      *config.Config
	ocr      TextExtractor
	detector ObjectDetector
	reasoner infer.Reasoner
	cat      *catalog.Catalog
	cascade  *infer.Cascade
	labels   *infer.LabelResolver

	mu   sync.Mutex
	busy bool
}

// NewService 분석 서비스 생성. 협력 서비스는 인터페이스로 주입된다.
func NewService(cfg *config.Config, ocr TextExtractor, detector ObjectDetector, reasoner infer.Reasoner, cat *catalog.Catalog) *Service {
	return &Service{
		cfg:      cfg,
		ocr:      ocr,
		detector: detector,
		reasoner: reasoner,
		cat:      cat,
		cascade:  infer.NewCascade(cat),
		labels:   infer.NewLabelResolver(cat, reasoner),
	}
}

// tryAcquire 분석 진행 플래그 획득. 이미 진행 중이면 거부한다(대기하지 않음).
func (s *Service) tryAcquire() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return common.ErrAnalysisInProgress
	}
	s.busy = true
	return nil
}

// release 분석 진행 플래그 해제
func (s *Service) release() {
	s.mu.Lock()
	s.busy = false
	s.mu.Unlock()
}

// AnalyzeOne 이미지 한 장 분석. 분석이 이미 진행 중이면 즉시 거부한다.
func (s *Service) AnalyzeOne(ctx context.Context, imageData string) ([]inventory.Item, error) {
	if err := s.tryAcquire(); err != nil {
		return nil, err
	}
	defer s.release()

	return s.analyzeImage(ctx, imageData)
}

// AnalyzeBatch 이미지 N 장을 엄격히 순차 분석. 이미지 사이에 고정 지연을 두어
// 협력 서비스 속도 제한을 지킨다. 이미지 i 의 실패가 i+1..N 처리를 막지 않는다.
func (s *Service) AnalyzeBatch(ctx context.Context, images []string) ([]BatchResult, error) {
	if len(images) == 0 {
		return nil, common.NewValidationError("이미지가 없습니다")
	}
	if len(images) > s.cfg.Batch.MaxImages {
		return nil, common.NewValidationError(
			fmt.Sprintf("이미지는 한 번에 %d 장까지 가능합니다", s.cfg.Batch.MaxImages))
	}

	if err := s.tryAcquire(); err != nil {
		return nil, err
	}
	defer s.release()

	results := make([]BatchResult, 0, len(images))
	for i, imageData := range images {
		if i > 0 {
			if err := sleepCtx(ctx, s.cfg.Batch.Delay); err != nil {
				return results, err
			}
		}

		items, err := s.analyzeImage(ctx, imageData)
		result := BatchResult{Index: i, Items: items}
		if err != nil {
			// 이미지 한 장의 실패는 국소적이다. 기록하고 다음으로 진행한다.
			common.LogError("일괄 분석 중 이미지 실패",
				zap.Int("index", i),
				zap.Error(err),
			)
			result.Error = err.Error()
		}
		results = append(results, result)

		// 호출자가 취소했으면 남은 이미지는 처리하지 않는다
		if ctx.Err() != nil {
			return results, ctx.Err()
		}
	}
	return results, nil
}

// analyzeImage 이미지 한 장의 파이프라인: OCR → 탐지 → 신호 해석.
// OCR 이나 탐지가 실패해도 파이프라인은 중단되지 않는다. 해당 신호를
// 없는 것으로 보고 남은 신호로 해석을 계속한다.
func (s *Service) analyzeImage(ctx context.Context, imageData string) ([]inventory.Item, error) {
	analysisID := common.GenerateUUID()
	start := time.Now()

	rawText := ""
	if s.ocr != nil {
		text, err := s.ocr.ExtractText(ctx, imageData)
		if err != nil {
			common.LogWarn("OCR 실패, 텍스트 신호 없이 진행",
				zap.String("analysis_id", analysisID),
				zap.Error(err),
			)
		} else {
			rawText = text
		}
	}

	var detections []vision.Detection
	if s.detector != nil {
		detected, err := s.detector.Detect(ctx, imageData)
		if err != nil {
			common.LogWarn("객체 탐지 실패, 라벨 신호 없이 진행",
				zap.String("analysis_id", analysisID),
				zap.Error(err),
			)
		} else {
			detections = detected
		}
	}

	items := s.Resolve(ctx, rawText, detections)

	common.LogInfo("이미지 분석 완료",
		zap.String("analysis_id", analysisID),
		zap.Int("items", len(items)),
		zap.Duration("소요시간", time.Since(start)),
	)
	return items, nil
}

// Resolve OCR 텍스트와 탐지 라벨을 해석하여 이름이 정해진 항목들을 반환.
// 아무것도 판별하지 못하면 빈 슬라이스를 돌려준다.
func (s *Service) Resolve(ctx context.Context, rawText string, detections []vision.Detection) []inventory.Item {
	var items []inventory.Item

	// 텍스트 신호: 추론 캐스케이드
	result := s.cascade.Infer(rawText)
	common.LogDebug("캐스케이드 결과",
		zap.String("stage", string(result.Stage)),
		zap.String("name", result.Name),
		zap.Float64("confidence", result.Confidence),
		zap.String("reasoning", result.Reasoning),
	)

	switch result.Stage {
	case infer.StageNoInput:
		// 텍스트 신호 없음
	case infer.StageNeedExternal:
		name, source := s.escalate(ctx, rawText, detections)
		items = append(items, inventory.Item{
			Name:     name,
			Quantity: 1,
			Source:   source,
		})
	default:
		items = append(items, inventory.Item{
			Name:       result.Name,
			Quantity:   1,
			Confidence: result.Confidence,
			Source:     inventory.SourceOCRCascade,
		})
	}

	// 라벨 신호: 탐지 라벨 개별 변환
	for _, d := range detections {
		name, ok := s.labels.Resolve(ctx, d.Class)
		if !ok {
			continue
		}
		items = append(items, inventory.Item{
			Name:       name,
			Quantity:   1,
			Confidence: d.Confidence,
			Source:     inventory.SourceDetection,
		})
	}

	return items
}

// escalate 외부 추론 에스컬레이션. 실패하면 로컬 폴백 사전으로 내려가며
// 어떤 경우에도 이름을 돌려준다.
func (s *Service) escalate(ctx context.Context, rawText string, detections []vision.Detection) (string, inventory.Source) {
	if s.reasoner != nil {
		normalized := infer.Normalize(rawText)
		labels := s.foodLabels(detections)
		prompt := infer.BuildEscalationPrompt(normalized, labels)

		answer, err := s.reasoner.Reason(ctx, prompt)
		if err == nil {
			if name := infer.CleanExternalName(answer); name != "" {
				return name, inventory.SourceExternalReasoning
			}
		} else {
			common.LogWarn("외부 추론 실패, 로컬 폴백 사용", zap.Error(err))
		}
	}

	return infer.FallbackName(rawText, s.cat.FallbackNames), inventory.SourceOCRCascade
}

// foodLabels 에스컬레이션 문맥에 넣을 의미 있는 라벨 (비식품 라벨 제외)
func (s *Service) foodLabels(detections []vision.Detection) []string {
	var labels []string
	for _, d := range detections {
		if s.cat.NonFoodLabels.Contains(d.Class) {
			continue
		}
		labels = append(labels, d.Class)
	}
	return labels
}

// sleepCtx 취소 가능한 지연
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
