package infer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractNumericToken(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"한글과 숫자가 붙은 토큰", "바나나우유250ml 행사", "바나나우유250"},
		{"퍼센트 표기 우선", "과즙음료 사과100% 1L", "사과100%"},
		{"공백으로 분리된 숫자", "오렌지주스 100 퍼센트", "오렌지주스 100"},
		{"가장 긴 매칭 선택", "물500 바나나우유250", "바나나우유250"},
		{"최소 길이 미달", "물2", ""},
		{"숫자 없음", "신선한 두부", ""},
		{"빈 입력", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractNumericToken(tt.text))
		})
	}
}
