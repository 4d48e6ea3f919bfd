package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordSet(t *testing.T) {
	s := NewKeywordSet("우유", "두유", "주스")

	t.Run("정확 포함 여부", func(t *testing.T) {
		assert.True(t, s.Contains("우유"))
		assert.True(t, s.Contains("  우유 "))
		assert.False(t, s.Contains("유"))
		assert.False(t, s.Contains("콜라"))
	})

	t.Run("선언 순서대로 첫 키워드 탐색", func(t *testing.T) {
		keyword, ok := s.FirstIn("매일두유와 우유 묶음")
		require.True(t, ok)
		// 두유보다 우유가 먼저 선언되어 있다
		assert.Equal(t, "우유", keyword)

		_, ok = s.FirstIn("생수 한 병")
		assert.False(t, ok)
	})
}

func TestDefault(t *testing.T) {
	cat := Default()

	t.Run("카탈로그 구성 요소가 모두 채워져 있다", func(t *testing.T) {
		assert.NotEmpty(t, cat.Brands.Brands())
		assert.NotEmpty(t, cat.Ingredients.Categories())
		assert.NotEmpty(t, cat.BeverageKeywords.Keywords())
		assert.NotEmpty(t, cat.NonFoodLabels.Keywords())
		assert.NotEmpty(t, cat.LabelNames)
		assert.NotEmpty(t, cat.FallbackNames)
	})

	t.Run("주방 집기 라벨은 비식품", func(t *testing.T) {
		for _, label := range []string{"bottle", "cup", "plate", "refrigerator"} {
			assert.True(t, cat.NonFoodLabels.Contains(label), label)
		}
	})
}
