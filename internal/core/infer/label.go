package infer

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"fridge-inventory/internal/core/catalog"

	"go.uber.org/zap"

	"fridge-inventory/internal/pkg/common"
)

// Reasoner 외부 추론 협력 서비스 계약. 실패하거나 할당량이 초과되면
// 에러를 돌려주며, 호출자는 이를 "응답 없음"과 동일하게 취급한다.
type Reasoner interface {
	Reason(ctx context.Context, prompt string) (string, error)
}

// notFoodSentinel 추론 서비스가 비식품으로 판정했을 때의 응답 센티널
const notFoodSentinel = "NOTFOOD"

// maxLabelAnswerRunes 이보다 긴 응답은 이름이 아니라 설명으로 간주
const maxLabelAnswerRunes = 20

var nonLetterPattern = regexp.MustCompile(`[^A-Za-z가-힣]+`)

// LabelResolver 탐지 라벨 하나를 현지 식재료명으로 변환한다.
// 비식품 라벨은 즉시 거부하고, 카탈로그를 먼저 보고 외부 추론을 폴백으로 쓴다.
type LabelResolver struct {
	nonFood  *catalog.KeywordSet
	names    []catalog.LabelTranslation
	reasoner Reasoner
}

// NewLabelResolver 라벨 리졸버 생성. reasoner 는 nil 일 수 있다(로컬 사전만 사용).
func NewLabelResolver(cat *catalog.Catalog, reasoner Reasoner) *LabelResolver {
	return &LabelResolver{
		nonFood:  cat.NonFoodLabels,
		names:    cat.LabelNames,
		reasoner: reasoner,
	}
}

// Resolve 라벨을 현지 이름으로 변환. 비식품 라벨이면 ok=false.
// 외부 추론이 실패해도 사전→원본 라벨 순으로 반드시 이름을 돌려준다.
// 그럴듯한 식품 라벨을 조용히 버리는 일은 없다.
func (r *LabelResolver) Resolve(ctx context.Context, label string) (string, bool) {
	label = strings.TrimSpace(label)
	if label == "" {
		return "", false
	}

	// 비식품 거부 목록이 최우선. 협력 서비스 가용 여부와 무관하다.
	if r.nonFood.Contains(label) {
		common.LogDebug("비식품 라벨 거부", zap.String("label", label))
		return "", false
	}

	// 외부 추론으로 식품 여부 확인 + 번역
	if r.reasoner != nil {
		answer, err := r.reasoner.Reason(ctx, buildLabelPrompt(label))
		if err == nil {
			name, verdict := parseLabelAnswer(answer)
			switch verdict {
			case labelRejected:
				common.LogDebug("추론 서비스가 비식품으로 판정", zap.String("label", label))
				return "", false
			case labelResolved:
				return name, true
			}
			// labelUnusable 이면 로컬 사전으로 진행
		} else {
			common.LogWarn("라벨 추론 실패, 로컬 사전 사용",
				zap.String("label", label),
				zap.Error(err),
			)
		}
	}

	// 정적 영문→현지명 사전: 정확 일치 우선, 부분 일치 차선
	lower := strings.ToLower(label)
	for _, entry := range r.names {
		if entry.Label == lower {
			return entry.Name, true
		}
	}
	for _, entry := range r.names {
		if strings.Contains(lower, entry.Label) || strings.Contains(entry.Label, lower) {
			return entry.Name, true
		}
	}

	// 마지막 수단: 원본 라벨 그대로
	return label, true
}

// buildLabelPrompt 식품 여부 확인 + 번역 프롬프트
func buildLabelPrompt(label string) string {
	return "객체 탐지 라벨 \"" + label + "\" 이(가) 먹을 수 있는 식품이나 식재료인가요? " +
		"식품이면 한국어 이름 하나만 답하고, 식품이 아니면 NOT_FOOD 라고만 답하세요."
}

type labelVerdict int

const (
	labelUnusable labelVerdict = iota
	labelResolved
	labelRejected
)

// parseLabelAnswer 추론 응답 파싱. 문자 이외를 제거한 뒤 센티널을 확인하고,
// 한글 이름으로 쓸 수 없는 응답은 unusable 로 처리한다.
func parseLabelAnswer(answer string) (string, labelVerdict) {
	cleaned := nonLetterPattern.ReplaceAllString(answer, "")
	if cleaned == "" {
		return "", labelUnusable
	}
	if strings.Contains(strings.ToUpper(cleaned), notFoodSentinel) {
		return "", labelRejected
	}

	// 현지 이름은 한글이어야 한다. 영문만 남았거나 설명 수준으로 길면 사용 불가.
	name := strings.TrimFunc(cleaned, func(r rune) bool {
		return r < '가' || r > '힣'
	})
	if name == "" || utf8.RuneCountInString(name) > maxLabelAnswerRunes {
		return "", labelUnusable
	}
	return name, labelResolved
}
