package infer

import (
	"strings"

	"fridge-inventory/internal/core/catalog"
)

// IngredientMatch 사전 매칭 결과
type IngredientMatch struct {
	Name     string
	Category string
}

// IngredientDictionaryMatcher 사전에서 텍스트에 나타나는 첫 식재료명을 찾는다.
type IngredientDictionaryMatcher struct {
	dict *catalog.IngredientDictionary
}

// NewIngredientDictionaryMatcher 식재료 사전 매처 생성
func NewIngredientDictionaryMatcher(dict *catalog.IngredientDictionary) *IngredientDictionaryMatcher {
	return &IngredientDictionaryMatcher{dict: dict}
}

// Match 카테고리, 식재료명 순으로 사전 선언 순서대로 순회하여 텍스트에
// 부분 문자열로 처음 나타나는 항목을 반환한다. first-match 이며 best-match 가
// 아니다. 동점은 사전 선언 순서가 결정한다(의도된 설계). 없으면 빈 슬라이스.
func (m *IngredientDictionaryMatcher) Match(text string) []IngredientMatch {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)
	for _, category := range m.dict.Categories() {
		for _, name := range category.Ingredients {
			if strings.Contains(lower, strings.ToLower(name)) {
				return []IngredientMatch{{Name: name, Category: category.Name}}
			}
		}
	}
	return nil
}
