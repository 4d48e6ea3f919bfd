package infer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"빈 입력", "", ""},
		{"기호 제거", "신라면! (매운맛)", "신라면 매운맛"},
		{"연속 공백 축약", "농심   신라면    120g", "농심 신라면 120g"},
		{"앞뒤 공백 제거", "  매일두유 500ml  ", "매일두유 500ml"},
		{"영숫자 유지", "Coca-Cola 500ml", "Coca Cola 500ml"},
		{"한글 자모 유지", "ㄱㅏ나다", "ㄱㅏ나다"},
		{"기호만 있는 입력", "!@#$%^&*()", ""},
		{"개행과 탭", "우유\n\t두유", "우유 두유"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}
