package infer

import (
	"strings"
	"unicode/utf8"

	"fridge-inventory/internal/core/catalog"
)

// BrandMatch 브랜드+제품 매칭 결과
type BrandMatch struct {
	Brand      string
	Product    string
	Category   string
	Confidence int
	// FullName "브랜드 제품" 형식의 정식 이름. 제품 단독 매칭이면 제품명만 담는다.
	FullName string
	// BrandAnchored 1차(브랜드 기준) 탐색에서 나온 완전 매칭 여부
	BrandAnchored bool
}

// BrandProductMatcher 텍스트에서 가장 강한 브랜드+제품 부분 문자열 매칭을 찾는다.
type BrandProductMatcher struct {
	brands *catalog.BrandCatalog
}

// NewBrandProductMatcher 브랜드 제품 매처 생성
func NewBrandProductMatcher(brands *catalog.BrandCatalog) *BrandProductMatcher {
	return &BrandProductMatcher{brands: brands}
}

// Match 2단계 매칭. 1차: 브랜드가 텍스트에 있으면 해당 브랜드의 제품을 탐색,
// 신뢰도 = 브랜드 글자수 + 제품 글자수 + 20. 2차(1차 실패 시): 브랜드와 무관하게
// 모든 제품명을 탐색, 신뢰도 = 제품 글자수. 동점이면 카탈로그 선언 순서상
// 먼저 나온 후보가 이긴다. 매칭이 없으면 nil.
func (m *BrandProductMatcher) Match(text string) *BrandMatch {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)

	// 1차: 브랜드 기준 탐색
	var best *BrandMatch
	for _, brand := range m.brands.Brands() {
		if !strings.Contains(lower, strings.ToLower(brand.Name)) {
			continue
		}
		for _, category := range brand.Categories {
			for _, product := range category.Products {
				if !strings.Contains(lower, strings.ToLower(product)) {
					continue
				}
				confidence := utf8.RuneCountInString(brand.Name) + utf8.RuneCountInString(product) + 20
				if best == nil || confidence > best.Confidence {
					best = &BrandMatch{
						Brand:         brand.Name,
						Product:       product,
						Category:      category.Name,
						Confidence:    confidence,
						FullName:      brand.Name + " " + product,
						BrandAnchored: true,
					}
				}
			}
		}
	}
	if best != nil {
		return best
	}

	// 2차: 제품명 단독 탐색
	for _, brand := range m.brands.Brands() {
		for _, category := range brand.Categories {
			for _, product := range category.Products {
				if !strings.Contains(lower, strings.ToLower(product)) {
					continue
				}
				confidence := utf8.RuneCountInString(product)
				if best == nil || confidence > best.Confidence {
					best = &BrandMatch{
						Brand:      brand.Name,
						Product:    product,
						Category:   category.Name,
						Confidence: confidence,
						FullName:   product,
					}
				}
			}
		}
	}
	return best
}

// MatchBrandOnly 텍스트에서 브랜드만 탐지하여 대표 제품을 돌려준다.
// 브랜드 첫 카테고리의 첫 제품을 대표로 삼는다. 최대 추론 폴백에서 사용.
func (m *BrandProductMatcher) MatchBrandOnly(text string) *BrandMatch {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)
	for _, brand := range m.brands.Brands() {
		if !strings.Contains(lower, strings.ToLower(brand.Name)) {
			continue
		}
		if len(brand.Categories) == 0 || len(brand.Categories[0].Products) == 0 {
			continue
		}
		product := brand.Categories[0].Products[0]
		return &BrandMatch{
			Brand:      brand.Name,
			Product:    product,
			Category:   brand.Categories[0].Name,
			Confidence: utf8.RuneCountInString(brand.Name),
			FullName:   brand.Name + " " + product,
		}
	}
	return nil
}
