package infer

import (
	"fmt"
	"regexp"
	"strings"

	"fridge-inventory/internal/core/catalog"
)

// Stage 추론 단계. 어떤 전략이 이름을 결정했는지 나타낸다.
type Stage string

const (
	StageNoInput          Stage = "no_input"
	StageBrandProduct     Stage = "ml_brand_product"
	StageMaxInference     Stage = "ml_max_inference"
	StageDefault          Stage = "ml_default"
	StageIngredientDirect Stage = "ingredient_direct"
	StageNeedExternal     Stage = "need_external"
)

// 단계별 고정 신뢰도
const (
	confidenceBrandProduct     = 0.95
	confidenceIngredientDirect = 0.9
	confidenceMaxInference     = 0.85
	confidenceDefault          = 0.8
)

// DefaultBeverageName 음료로 판별됐으나 세부 신호가 전혀 없을 때의 기본 이름
const DefaultBeverageName = "음료"

// TerminalFallbackName 모든 전략이 실패해도 반드시 돌려주는 이름
const TerminalFallbackName = "음식"

// Result 텍스트 입력 1건당 한 번 생성되는 추론 결과. 생성 후 변경하지 않는다.
type Result struct {
	Name       string  `json:"name"`
	Stage      Stage   `json:"stage"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}

// maxStrategy 최대 추론 폴백의 단일 전략. 이름을 찾지 못하면 빈 문자열 반환.
type maxStrategy struct {
	name    string
	resolve func(text string) string
}

// Cascade 매처들을 고정 우선순위로 순회하며 첫 성공에서 멈추는 추론 캐스케이드.
type Cascade struct {
	brands        *BrandProductMatcher
	beverage      *BeverageClassifier
	ingredients   *IngredientDictionaryMatcher
	maxStrategies []maxStrategy
}

// NewCascade 정적 카탈로그를 주입받아 캐스케이드 생성
func NewCascade(cat *catalog.Catalog) *Cascade {
	brands := NewBrandProductMatcher(cat.Brands)
	beverage := NewBeverageClassifier(cat.BeverageKeywords)
	ingredients := NewIngredientDictionaryMatcher(cat.Ingredients)

	c := &Cascade{
		brands:      brands,
		beverage:    beverage,
		ingredients: ingredients,
	}

	// 최대 추론 폴백 전략. 순서가 곧 우선순위다.
	c.maxStrategies = []maxStrategy{
		{name: "brand_only", resolve: func(text string) string {
			if m := brands.MatchBrandOnly(text); m != nil {
				return m.FullName
			}
			return ""
		}},
		{name: "beverage_keyword", resolve: func(text string) string {
			if keyword, ok := cat.BeverageKeywords.FirstIn(text); ok {
				return keyword
			}
			return ""
		}},
		{name: "ingredient_dictionary", resolve: func(text string) string {
			if matches := ingredients.Match(text); len(matches) > 0 {
				return matches[0].Name
			}
			return ""
		}},
		{name: "numeric_token", resolve: ExtractNumericToken},
		{name: "script_word", resolve: FirstScriptWord},
	}

	return c
}

// Infer 텍스트 한 건에 대한 추론. 우선순위 순서로 짧게 순회하며
// 첫 성공에서 멈춘다. need_external 이 반환되면 호출자가 외부 추론
// 협력 서비스로 에스컬레이션해야 한다.
func (c *Cascade) Infer(rawText string) Result {
	text := strings.TrimSpace(rawText)

	// 1. 입력 없음
	if text == "" {
		return Result{Stage: StageNoInput, Confidence: 0, Reasoning: "입력 텍스트 없음"}
	}

	// 2. 음료 판별 (ml 단위 + 음료 키워드)
	if c.beverage.IsBeverage(text) {
		// 2a. 브랜드+제품 완전 매칭
		if m := c.brands.Match(text); m != nil && m.BrandAnchored {
			return Result{
				Name:       m.FullName,
				Stage:      StageBrandProduct,
				Confidence: confidenceBrandProduct,
				Reasoning:  fmt.Sprintf("브랜드+제품 매칭: %s/%s", m.Brand, m.Product),
			}
		}

		// 2b. 최대 추론 폴백
		for _, strategy := range c.maxStrategies {
			if name := strategy.resolve(text); name != "" {
				return Result{
					Name:       name,
					Stage:      StageMaxInference,
					Confidence: confidenceMaxInference,
					Reasoning:  fmt.Sprintf("최대 추론 폴백(%s)", strategy.name),
				}
			}
		}

		// 2c. 신호 없는 음료
		return Result{
			Name:       DefaultBeverageName,
			Stage:      StageDefault,
			Confidence: confidenceDefault,
			Reasoning:  "음료로 판별되었으나 세부 신호 없음",
		}
	}

	// 3. 식재료 사전 직접 매칭
	if matches := c.ingredients.Match(text); len(matches) > 0 {
		return Result{
			Name:       matches[0].Name,
			Stage:      StageIngredientDirect,
			Confidence: confidenceIngredientDirect,
			Reasoning:  fmt.Sprintf("식재료 사전 매칭(%s)", matches[0].Category),
		}
	}

	// 4. 외부 추론 필요
	return Result{
		Stage:      StageNeedExternal,
		Confidence: 0,
		Reasoning:  "로컬 전략으로 판별 불가, 외부 추론 필요",
	}
}

var scriptWordPattern = regexp.MustCompile(`[가-힣]{2,}`)

// FirstScriptWord 텍스트에서 처음 나타나는 두 글자 이상 한글 단어
func FirstScriptWord(text string) string {
	return scriptWordPattern.FindString(text)
}

// BuildEscalationPrompt 외부 추론 협력 서비스에 보낼 요청 템플릿.
// 정규화된 텍스트와 의미 있는 탐지 라벨을 함께 전달한다.
func BuildEscalationPrompt(normalizedText string, labels []string) string {
	var sb strings.Builder
	sb.WriteString("다음은 식품 포장에서 추출한 텍스트입니다. 가장 가능성 높은 제품명 또는 식재료명 하나만 한국어로 답하세요. 설명 없이 이름만 답하세요.\n")
	sb.WriteString("텍스트: ")
	sb.WriteString(normalizedText)
	if len(labels) > 0 {
		sb.WriteString("\n함께 탐지된 객체: ")
		sb.WriteString(strings.Join(labels, ", "))
	}
	return sb.String()
}

// 외부 추론 응답에서 제거할 라벨 접두사
var answerPrefixes = []string{
	"제품명:", "제품:", "이름:", "답:", "답변:",
	"product:", "name:", "answer:",
}

var numericParenPattern = regexp.MustCompile(`^[0-9%.,\s]+$`)

// CleanExternalName 외부 추론 응답 후처리. 접두사와 마크다운 강조를 제거하고,
// 괄호 내용이 순수 숫자/퍼센트가 아니면 괄호 앞에서 자른다.
func CleanExternalName(answer string) string {
	name := strings.TrimSpace(answer)
	if name == "" {
		return ""
	}

	// 첫 줄만 사용
	if idx := strings.IndexAny(name, "\r\n"); idx >= 0 {
		name = name[:idx]
	}

	// 마크다운 강조 제거
	name = strings.ReplaceAll(name, "**", "")
	name = strings.ReplaceAll(name, "*", "")
	name = strings.ReplaceAll(name, "`", "")
	name = strings.TrimSpace(name)

	// 알려진 접두사 제거
	lower := strings.ToLower(name)
	for _, prefix := range answerPrefixes {
		if strings.HasPrefix(lower, prefix) {
			name = strings.TrimSpace(name[len(prefix):])
			lower = strings.ToLower(name)
		}
	}

	// 괄호 처리: 내용이 순수 숫자/퍼센트면 유지, 아니면 괄호 앞에서 절단
	if open := strings.Index(name, "("); open >= 0 {
		closeIdx := strings.Index(name[open:], ")")
		inner := ""
		if closeIdx >= 0 {
			inner = name[open+1 : open+closeIdx]
		}
		if !numericParenPattern.MatchString(inner) || inner == "" {
			name = strings.TrimSpace(name[:open])
		}
	}

	return strings.Trim(name, `"' `)
}

// FallbackName 외부 추론까지 실패했을 때의 최종 로컬 폴백.
// 폴백 사전의 카테고리 키워드 포함 여부를 먼저 보고, 없으면 첫 한글 단어,
// 그래도 없으면 보장된 기본 이름을 돌려준다. 절대 실패하지 않는다.
func FallbackName(rawText string, fallback []catalog.CategoryKeyword) string {
	text := Normalize(rawText)
	for _, entry := range fallback {
		if strings.Contains(text, entry.Keyword) {
			return entry.Name
		}
	}
	if word := FirstScriptWord(text); word != "" {
		return word
	}
	return TerminalFallbackName
}
