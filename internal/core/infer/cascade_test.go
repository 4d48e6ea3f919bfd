package infer

import (
	"strings"
	"testing"

	"fridge-inventory/internal/core/catalog"

	"github.com/stretchr/testify/assert"
)

func TestCascade_Infer(t *testing.T) {
	c := NewCascade(catalog.Default())

	t.Run("입력 없음", func(t *testing.T) {
		got := c.Infer("   ")
		assert.Equal(t, StageNoInput, got.Stage)
		assert.Empty(t, got.Name)
		assert.Zero(t, got.Confidence)
	})

	t.Run("음료 브랜드+제품 매칭", func(t *testing.T) {
		got := c.Infer("매일두유 500ml")
		assert.Equal(t, StageBrandProduct, got.Stage)
		assert.Equal(t, "매일 매일두유", got.Name)
		assert.Equal(t, 0.95, got.Confidence)
	})

	t.Run("음료 최대 추론 폴백 브랜드 단독", func(t *testing.T) {
		// 서울우유 브랜드는 있으나 제품명은 텍스트에 없다
		got := c.Infer("서울우유 1000ml")
		assert.Equal(t, StageMaxInference, got.Stage)
		assert.Equal(t, "서울우유 흰우유", got.Name)
		assert.Equal(t, 0.85, got.Confidence)
	})

	t.Run("음료 최대 추론 폴백 키워드", func(t *testing.T) {
		got := c.Infer("수입 주스 500ml")
		assert.Equal(t, StageMaxInference, got.Stage)
		assert.Equal(t, "주스", got.Name)
	})

	t.Run("식재료 사전 직접 매칭", func(t *testing.T) {
		got := c.Infer("국내산 양파")
		assert.Equal(t, StageIngredientDirect, got.Stage)
		assert.Equal(t, "양파", got.Name)
		assert.Equal(t, 0.9, got.Confidence)
	})

	t.Run("외부 추론 필요", func(t *testing.T) {
		got := c.Infer("imported specialty 2024")
		assert.Equal(t, StageNeedExternal, got.Stage)
		assert.Empty(t, got.Name)
		assert.Zero(t, got.Confidence)
	})

	t.Run("음료 판별이 식재료 매칭보다 앞선다", func(t *testing.T) {
		// 우유는 식재료 사전에도 있지만 ml 과 함께면 음료 경로를 탄다
		got := c.Infer("저지방 우유 1000ml")
		assert.Contains(t, []Stage{StageBrandProduct, StageMaxInference, StageDefault}, got.Stage)
	})
}

func TestFirstScriptWord(t *testing.T) {
	assert.Equal(t, "바나나", FirstScriptWord("fresh 바나나 two 개"))
	assert.Equal(t, "", FirstScriptWord("abc 123"))
	// 한 글자 단어는 건너뛴다
	assert.Equal(t, "달걀", FirstScriptWord("물 달걀 한판"))
}

func TestBuildEscalationPrompt(t *testing.T) {
	prompt := BuildEscalationPrompt("흐릿한 포장 텍스트", []string{"apple", "banana"})
	assert.Contains(t, prompt, "흐릿한 포장 텍스트")
	assert.Contains(t, prompt, "apple, banana")

	noLabels := BuildEscalationPrompt("텍스트만", nil)
	assert.False(t, strings.Contains(noLabels, "탐지된 객체"))
}

func TestCleanExternalName(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   string
	}{
		{"접두사 제거", "제품명: 신라면", "신라면"},
		{"영문 접두사 제거", "Answer: 코카콜라", "코카콜라"},
		{"마크다운 강조 제거", "**바나나우유**", "바나나우유"},
		{"첫 줄만 사용", "신라면\n농심에서 만든 라면입니다", "신라면"},
		{"설명 괄호 절단", "코카콜라 (탄산음료)", "코카콜라"},
		{"단위 괄호 절단", "코카콜라 (500ml)", "코카콜라"},
		{"숫자 괄호 유지", "오렌지주스 (100)", "오렌지주스 (100)"},
		{"따옴표 제거", `"사과"`, "사과"},
		{"빈 응답", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanExternalName(tt.answer))
		})
	}
}

func TestFallbackName(t *testing.T) {
	fallback := catalog.Default().FallbackNames

	tests := []struct {
		name string
		text string
		want string
	}{
		{"폴백 사전 키워드", "얼큰한 라면 할인", "라면"},
		{"키워드 없으면 첫 한글 단어", "brand 딸기잼 sale", "딸기잼"},
		{"한글 없으면 보장된 기본 이름", "abc 123", "음식"},
		{"빈 입력도 기본 이름", "", "음식"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FallbackName(tt.text, fallback))
		})
	}
}
