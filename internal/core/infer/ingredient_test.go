package infer

import (
	"testing"

	"fridge-inventory/internal/core/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngredientDictionaryMatcher_Match(t *testing.T) {
	m := NewIngredientDictionaryMatcher(catalog.Default().Ingredients)

	t.Run("부분 문자열 매칭", func(t *testing.T) {
		got := m.Match("국내산 양파 1kg")
		require.Len(t, got, 1)
		assert.Equal(t, "양파", got[0].Name)
		assert.Equal(t, "채소", got[0].Category)
	})

	t.Run("사전 선언 순서가 우선순위", func(t *testing.T) {
		// 사과(과일)와 양파(채소)가 함께 있으면 먼저 선언된 채소가 이긴다
		got := m.Match("사과 양파 세트")
		require.Len(t, got, 1)
		assert.Equal(t, "양파", got[0].Name)
	})

	t.Run("매칭 최대 한 건", func(t *testing.T) {
		got := m.Match("양파 당근 감자")
		assert.Len(t, got, 1)
	})

	t.Run("매칭 없음", func(t *testing.T) {
		assert.Empty(t, m.Match("세제 구매 영수증"))
	})

	t.Run("빈 입력", func(t *testing.T) {
		assert.Empty(t, m.Match(""))
	})
}
