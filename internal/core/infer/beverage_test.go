package infer

import (
	"testing"

	"fridge-inventory/internal/core/catalog"

	"github.com/stretchr/testify/assert"
)

func TestBeverageClassifier_IsBeverage(t *testing.T) {
	c := NewBeverageClassifier(catalog.Default().BeverageKeywords)

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"용량과 키워드 모두 존재", "매일두유 500ml", true},
		{"대문자 ML", "딸기 주스 300ML", true},
		{"키워드만 있고 용량 없음", "매일두유 한 팩", false},
		{"용량만 있고 키워드 없음", "참기름 500ml", false},
		{"둘 다 없음", "신라면 120g", false},
		{"빈 입력", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.IsBeverage(tt.text))
		})
	}
}
