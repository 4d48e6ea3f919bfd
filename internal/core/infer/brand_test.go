package infer

import (
	"testing"

	"fridge-inventory/internal/core/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrandProductMatcher_Match(t *testing.T) {
	m := NewBrandProductMatcher(catalog.Default().Brands)

	t.Run("브랜드+제품 완전 매칭", func(t *testing.T) {
		got := m.Match("농심 신라면 120g")
		require.NotNil(t, got)
		assert.Equal(t, "농심", got.Brand)
		assert.Equal(t, "신라면", got.Product)
		assert.Equal(t, "라면", got.Category)
		// 브랜드 2자 + 제품 3자 + 20
		assert.Equal(t, 25, got.Confidence)
		assert.Equal(t, "농심 신라면", got.FullName)
		assert.True(t, got.BrandAnchored)
	})

	t.Run("브랜드명이 제품명에 포함된 경우", func(t *testing.T) {
		got := m.Match("매일두유 500ml")
		require.NotNil(t, got)
		assert.Equal(t, "매일", got.Brand)
		assert.Equal(t, "매일두유", got.Product)
		assert.Equal(t, 26, got.Confidence)
		assert.True(t, got.BrandAnchored)
	})

	t.Run("제품 단독 매칭", func(t *testing.T) {
		got := m.Match("신라면 큰사발")
		require.NotNil(t, got)
		assert.Equal(t, "농심", got.Brand)
		assert.Equal(t, "신라면", got.Product)
		assert.Equal(t, 3, got.Confidence)
		// 브랜드 없이 매칭되면 정식 이름은 제품명만 담는다
		assert.Equal(t, "신라면", got.FullName)
		assert.False(t, got.BrandAnchored)
	})

	t.Run("동점이면 선언 순서가 앞선 제품이 이긴다", func(t *testing.T) {
		// 신라면과 너구리는 모두 3자, 같은 브랜드 기준 신뢰도 25
		got := m.Match("농심 신라면 너구리 묶음")
		require.NotNil(t, got)
		assert.Equal(t, "신라면", got.Product)
	})

	t.Run("여러 브랜드가 같은 제품명을 가지면 먼저 선언된 브랜드", func(t *testing.T) {
		// 초코파이는 롯데와 오리온 양쪽에 있다
		got := m.Match("초코파이 한 상자")
		require.NotNil(t, got)
		assert.Equal(t, "롯데", got.Brand)
		assert.Equal(t, "초코파이", got.Product)
		assert.False(t, got.BrandAnchored)
	})

	t.Run("대소문자 무시", func(t *testing.T) {
		got := m.Match("cj 스팸 클래식")
		require.NotNil(t, got)
		assert.Equal(t, "CJ", got.Brand)
		assert.Equal(t, "스팸", got.Product)
		assert.True(t, got.BrandAnchored)
	})

	t.Run("매칭 없음", func(t *testing.T) {
		assert.Nil(t, m.Match("알 수 없는 외국 식품"))
	})

	t.Run("빈 입력", func(t *testing.T) {
		assert.Nil(t, m.Match(""))
	})
}

func TestBrandProductMatcher_MatchBrandOnly(t *testing.T) {
	m := NewBrandProductMatcher(catalog.Default().Brands)

	t.Run("브랜드의 대표 제품 반환", func(t *testing.T) {
		got := m.MatchBrandOnly("서울우유 1000ml")
		require.NotNil(t, got)
		assert.Equal(t, "서울우유", got.Brand)
		// 첫 카테고리의 첫 제품
		assert.Equal(t, "흰우유", got.Product)
		assert.Equal(t, "서울우유 흰우유", got.FullName)
	})

	t.Run("브랜드 없음", func(t *testing.T) {
		assert.Nil(t, m.MatchBrandOnly("무표시 제품"))
	})
}
