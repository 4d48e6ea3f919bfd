package infer

import (
	"context"
	"errors"
	"testing"

	"fridge-inventory/internal/core/catalog"

	"github.com/stretchr/testify/assert"
)

// fakeReasoner 고정 응답 또는 고정 에러를 돌려주는 추론 협력 서비스
type fakeReasoner struct {
	answer string
	err    error
	calls  int
}

func (f *fakeReasoner) Reason(_ context.Context, _ string) (string, error) {
	f.calls++
	return f.answer, f.err
}

func TestLabelResolver_Resolve(t *testing.T) {
	cat := catalog.Default()
	ctx := context.Background()

	t.Run("비식품 거부 목록이 추론 서비스보다 우선한다", func(t *testing.T) {
		reasoner := &fakeReasoner{answer: "물"}
		r := NewLabelResolver(cat, reasoner)

		name, ok := r.Resolve(ctx, "bottle")
		assert.False(t, ok)
		assert.Empty(t, name)
		// 거부 목록 라벨은 추론 서비스를 아예 호출하지 않는다
		assert.Zero(t, reasoner.calls)
	})

	t.Run("추론 서비스가 이름을 확정", func(t *testing.T) {
		r := NewLabelResolver(cat, &fakeReasoner{answer: "당근"})

		name, ok := r.Resolve(ctx, "carrot")
		assert.True(t, ok)
		assert.Equal(t, "당근", name)
	})

	t.Run("추론 서비스의 비식품 판정", func(t *testing.T) {
		r := NewLabelResolver(cat, &fakeReasoner{answer: "NOT_FOOD"})

		_, ok := r.Resolve(ctx, "controller")
		assert.False(t, ok)
	})

	t.Run("추론 실패 시 사전 폴백", func(t *testing.T) {
		r := NewLabelResolver(cat, &fakeReasoner{err: errors.New("quota exceeded")})

		name, ok := r.Resolve(ctx, "banana")
		assert.True(t, ok)
		assert.Equal(t, "바나나", name)
	})

	t.Run("한글 이름으로 쓸 수 없는 응답은 사전으로 진행", func(t *testing.T) {
		r := NewLabelResolver(cat, &fakeReasoner{answer: "Yes, it is an edible fruit."})

		name, ok := r.Resolve(ctx, "grape")
		assert.True(t, ok)
		assert.Equal(t, "포도", name)
	})

	t.Run("추론 서비스 없이 사전 정확 일치", func(t *testing.T) {
		r := NewLabelResolver(cat, nil)

		name, ok := r.Resolve(ctx, "apple")
		assert.True(t, ok)
		assert.Equal(t, "사과", name)
	})

	t.Run("사전 부분 일치", func(t *testing.T) {
		r := NewLabelResolver(cat, nil)

		name, ok := r.Resolve(ctx, "green apple")
		assert.True(t, ok)
		assert.Equal(t, "사과", name)
	})

	t.Run("마지막 수단은 원본 라벨", func(t *testing.T) {
		r := NewLabelResolver(cat, nil)

		name, ok := r.Resolve(ctx, "durian")
		assert.True(t, ok)
		assert.Equal(t, "durian", name)
	})

	t.Run("빈 라벨", func(t *testing.T) {
		r := NewLabelResolver(cat, nil)

		_, ok := r.Resolve(ctx, "  ")
		assert.False(t, ok)
	})
}

func TestParseLabelAnswer(t *testing.T) {
	tests := []struct {
		name    string
		answer  string
		want    string
		verdict labelVerdict
	}{
		{"한글 이름", "당근", "당근", labelResolved},
		{"주변 기호 제거", "당근!", "당근", labelResolved},
		{"센티널", "NOT_FOOD", "", labelRejected},
		{"소문자 센티널", "not food", "", labelRejected},
		{"빈 응답", "  ", "", labelUnusable},
		{"영문만 있는 응답", "carrot", "", labelUnusable},
		{"설명 수준으로 긴 응답", "이것은먹을수있는식품이며한국에서매우흔히볼수있는채소입니다", "", labelUnusable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, verdict := parseLabelAnswer(tt.answer)
			assert.Equal(t, tt.verdict, verdict)
			assert.Equal(t, tt.want, name)
		})
	}
}
