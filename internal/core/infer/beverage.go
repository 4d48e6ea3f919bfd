package infer

import (
	"strings"

	"fridge-inventory/internal/core/catalog"
)

// BeverageClassifier 용량 단위(ml)와 음료 키워드가 함께 나타나면 음료로 판별한다.
type BeverageClassifier struct {
	keywords *catalog.KeywordSet
}

// NewBeverageClassifier 음료 분류기 생성
func NewBeverageClassifier(keywords *catalog.KeywordSet) *BeverageClassifier {
	return &BeverageClassifier{keywords: keywords}
}

// IsBeverage 원문 텍스트에 ml 단위와 음료 키워드가 모두 있는지 확인.
// 제품명을 정하지는 않는 순수 술어다.
func (c *BeverageClassifier) IsBeverage(text string) bool {
	if text == "" {
		return false
	}
	if !strings.Contains(strings.ToLower(text), "ml") {
		return false
	}
	_, found := c.keywords.FirstIn(text)
	return found
}
