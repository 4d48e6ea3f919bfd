package analysis

import (
	"context"
	"errors"
	"testing"
	"time"

	"fridge-inventory/internal/core/catalog"
	"fridge-inventory/internal/core/inventory"
	"fridge-inventory/internal/core/vision"
	"fridge-inventory/internal/infrastructure/config"
	"fridge-inventory/internal/pkg/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOCR 이미지별 고정 텍스트/에러를 돌려주는 OCR 협력 서비스
type fakeOCR struct {
	texts   map[string]string
	errs    map[string]error
	entered chan struct{} // nil 이 아니면 호출 진입 시 신호
	block   chan struct{} // nil 이 아니면 닫힐 때까지 대기
}

func (f *fakeOCR) ExtractText(_ context.Context, imageData string) (string, error) {
	if f.entered != nil {
		select {
		case f.entered <- struct{}{}:
		default:
		}
	}
	if f.block != nil {
		<-f.block
	}
	if err, ok := f.errs[imageData]; ok {
		return "", err
	}
	return f.texts[imageData], nil
}

// fakeDetector 고정 탐지 결과를 돌려주는 탐지 협력 서비스
type fakeDetector struct {
	detections []vision.Detection
	err        error
}

func (f *fakeDetector) Detect(_ context.Context, _ string) ([]vision.Detection, error) {
	return f.detections, f.err
}

// fakeReasoner 고정 응답 외부 추론 서비스
type fakeReasoner struct {
	answer string
	err    error
}

func (f *fakeReasoner) Reason(_ context.Context, _ string) (string, error) {
	return f.answer, f.err
}

func testConfig() *config.Config {
	return &config.Config{
		Batch: config.BatchConfig{
			Delay:     time.Millisecond,
			MaxImages: 3,
		},
	}
}

func TestService_AnalyzeOne(t *testing.T) {
	ctx := context.Background()

	t.Run("OCR 텍스트로 항목 생성", func(t *testing.T) {
		ocr := &fakeOCR{texts: map[string]string{"img": "국내산 양파"}}
		svc := NewService(testConfig(), ocr, nil, nil, catalog.Default())

		items, err := svc.AnalyzeOne(ctx, "img")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "양파", items[0].Name)
		assert.Equal(t, 0.9, items[0].Confidence)
		assert.Equal(t, inventory.SourceOCRCascade, items[0].Source)
	})

	t.Run("OCR 실패는 치명적이지 않다", func(t *testing.T) {
		ocr := &fakeOCR{errs: map[string]error{"img": errors.New("ocr down")}}
		detector := &fakeDetector{detections: []vision.Detection{{Class: "apple", Confidence: 0.88}}}
		svc := NewService(testConfig(), ocr, detector, nil, catalog.Default())

		items, err := svc.AnalyzeOne(ctx, "img")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "사과", items[0].Name)
		assert.Equal(t, inventory.SourceDetection, items[0].Source)
	})

	t.Run("탐지 실패도 치명적이지 않다", func(t *testing.T) {
		ocr := &fakeOCR{texts: map[string]string{"img": "매일두유 500ml"}}
		detector := &fakeDetector{err: errors.New("detector down")}
		svc := NewService(testConfig(), ocr, detector, nil, catalog.Default())

		items, err := svc.AnalyzeOne(ctx, "img")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "매일 매일두유", items[0].Name)
	})

	t.Run("분석 진행 중이면 즉시 거부", func(t *testing.T) {
		ocr := &fakeOCR{
			texts:   map[string]string{},
			entered: make(chan struct{}, 1),
			block:   make(chan struct{}),
		}
		svc := NewService(testConfig(), ocr, nil, nil, catalog.Default())

		done := make(chan struct{})
		go func() {
			_, _ = svc.AnalyzeOne(ctx, "img")
			close(done)
		}()

		// 첫 분석이 플래그를 잡고 OCR 에서 대기 중일 때
		<-ocr.entered
		_, err := svc.AnalyzeOne(ctx, "other")
		assert.ErrorIs(t, err, common.ErrAnalysisInProgress)

		close(ocr.block)
		<-done

		// 플래그 해제 후에는 다시 받을 수 있다
		_, err = svc.AnalyzeOne(ctx, "img")
		assert.NoError(t, err)
	})
}

func TestService_AnalyzeBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("이미지 한 장의 실패는 국소적이다", func(t *testing.T) {
		ocr := &fakeOCR{
			texts: map[string]string{"a": "양파", "c": "사과"},
			errs:  map[string]error{},
		}
		svc := NewService(testConfig(), ocr, nil, nil, catalog.Default())

		results, err := svc.AnalyzeBatch(ctx, []string{"a", "b", "c"})
		require.NoError(t, err)
		require.Len(t, results, 3)

		assert.Equal(t, 0, results[0].Index)
		require.Len(t, results[0].Items, 1)
		assert.Equal(t, "양파", results[0].Items[0].Name)

		// b 는 OCR 텍스트도 탐지도 없으니 항목 0 건
		assert.Empty(t, results[1].Items)
		assert.Empty(t, results[1].Error)

		require.Len(t, results[2].Items, 1)
		assert.Equal(t, "사과", results[2].Items[0].Name)
	})

	t.Run("빈 배치 거부", func(t *testing.T) {
		svc := NewService(testConfig(), nil, nil, nil, catalog.Default())

		_, err := svc.AnalyzeBatch(ctx, nil)
		require.Error(t, err)
		assert.True(t, common.IsValidationError(err))
	})

	t.Run("최대 장수 초과 거부", func(t *testing.T) {
		svc := NewService(testConfig(), nil, nil, nil, catalog.Default())

		_, err := svc.AnalyzeBatch(ctx, []string{"a", "b", "c", "d"})
		require.Error(t, err)
		assert.True(t, common.IsValidationError(err))
	})

	t.Run("취소되면 남은 이미지는 처리하지 않는다", func(t *testing.T) {
		cancelCtx, cancel := context.WithCancel(ctx)
		ocr := &fakeOCR{texts: map[string]string{"a": "양파"}}
		svc := NewService(testConfig(), ocr, nil, nil, catalog.Default())

		cancel()
		results, err := svc.AnalyzeBatch(cancelCtx, []string{"a", "b", "c"})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Less(t, len(results), 3)
	})
}

func TestService_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("캐스케이드와 탐지 라벨 결합", func(t *testing.T) {
		svc := NewService(testConfig(), nil, nil, nil, catalog.Default())

		items := svc.Resolve(ctx, "매일두유 500ml", []vision.Detection{
			{Class: "apple", Confidence: 0.9},
			{Class: "bottle", Confidence: 0.99}, // 비식품 라벨은 버린다
		})

		require.Len(t, items, 2)
		assert.Equal(t, "매일 매일두유", items[0].Name)
		assert.Equal(t, inventory.SourceOCRCascade, items[0].Source)
		assert.Equal(t, "사과", items[1].Name)
		assert.Equal(t, 0.9, items[1].Confidence)
		assert.Equal(t, inventory.SourceDetection, items[1].Source)
	})

	t.Run("신호 없으면 빈 결과", func(t *testing.T) {
		svc := NewService(testConfig(), nil, nil, nil, catalog.Default())
		assert.Empty(t, svc.Resolve(ctx, "", nil))
	})

	t.Run("외부 추론 에스컬레이션", func(t *testing.T) {
		reasoner := &fakeReasoner{answer: "제품명: 수입과자"}
		svc := NewService(testConfig(), nil, nil, reasoner, catalog.Default())

		items := svc.Resolve(ctx, "imported snack 2024", nil)
		require.Len(t, items, 1)
		assert.Equal(t, "수입과자", items[0].Name)
		assert.Equal(t, inventory.SourceExternalReasoning, items[0].Source)
	})

	t.Run("외부 추론 실패 시 로컬 폴백", func(t *testing.T) {
		reasoner := &fakeReasoner{err: errors.New("quota exceeded")}
		svc := NewService(testConfig(), nil, nil, reasoner, catalog.Default())

		items := svc.Resolve(ctx, "imported yummy 2024", nil)
		require.Len(t, items, 1)
		// 한글 신호가 전혀 없으면 보장된 기본 이름
		assert.Equal(t, "음식", items[0].Name)
		assert.Equal(t, inventory.SourceOCRCascade, items[0].Source)
	})

	t.Run("추론 서비스 없이도 에스컬레이션은 폴백으로 동작", func(t *testing.T) {
		svc := NewService(testConfig(), nil, nil, nil, catalog.Default())

		items := svc.Resolve(ctx, "brand 마카롱 sale", nil)
		require.Len(t, items, 1)
		assert.Equal(t, "마카롱", items[0].Name)
		assert.Equal(t, inventory.SourceOCRCascade, items[0].Source)
	})
}
