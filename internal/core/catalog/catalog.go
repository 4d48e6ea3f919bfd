package catalog

import "strings"

// Brand 브랜드 카탈로그 항목. 카테고리와 제품은 선언 순서가 곧 탐색 순서다.
type Brand struct {
	Name       string
	Categories []BrandCategory
}

// BrandCategory 브랜드 내 카테고리
type BrandCategory struct {
	Name     string
	Products []string
}

// BrandCatalog 브랜드→카테고리→정식 제품명 카탈로그. 런타임에 절대 변경되지 않는다.
type BrandCatalog struct {
	brands []Brand
}

// NewBrandCatalog 브랜드 카탈로그 생성
func NewBrandCatalog(brands []Brand) *BrandCatalog {
	return &BrandCatalog{brands: brands}
}

// Brands 선언 순서대로 브랜드 목록 반환 (읽기 전용)
func (c *BrandCatalog) Brands() []Brand {
	return c.brands
}

// IngredientCategory 카테고리별 식재료 사전 항목
type IngredientCategory struct {
	Name        string
	Ingredients []string
}

// IngredientDictionary 카테고리→식재료명 사전. 선언 순서가 매칭 우선순위를 결정한다.
type IngredientDictionary struct {
	categories []IngredientCategory
}

// NewIngredientDictionary 식재료 사전 생성
func NewIngredientDictionary(categories []IngredientCategory) *IngredientDictionary {
	return &IngredientDictionary{categories: categories}
}

// Categories 선언 순서대로 카테고리 목록 반환 (읽기 전용)
func (d *IngredientDictionary) Categories() []IngredientCategory {
	return d.categories
}

// KeywordSet 선언 순서를 보존하는 키워드 집합
type KeywordSet struct {
	keywords []string
	index    map[string]struct{}
}

// NewKeywordSet 키워드 집합 생성
func NewKeywordSet(keywords ...string) *KeywordSet {
	index := make(map[string]struct{}, len(keywords))
	for _, k := range keywords {
		index[k] = struct{}{}
	}
	return &KeywordSet{keywords: keywords, index: index}
}

// Contains 키워드 포함 여부 (대소문자 무시)
func (s *KeywordSet) Contains(keyword string) bool {
	_, ok := s.index[strings.ToLower(strings.TrimSpace(keyword))]
	return ok
}

// FirstIn 텍스트에 부분 문자열로 나타나는 첫 번째 키워드 반환
func (s *KeywordSet) FirstIn(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, k := range s.keywords {
		if strings.Contains(lower, strings.ToLower(k)) {
			return k, true
		}
	}
	return "", false
}

// Keywords 선언 순서대로 키워드 목록 반환 (읽기 전용)
func (s *KeywordSet) Keywords() []string {
	return s.keywords
}

// LabelTranslation 탐지 라벨(영문)→현지 식재료명 매핑
type LabelTranslation struct {
	Label string
	Name  string
}

// CategoryKeyword 최종 로컬 폴백 사전 항목 (카테고리 키워드→대표 이름)
type CategoryKeyword struct {
	Keyword string
	Name    string
}

// Catalog 추론에 필요한 모든 정적 참조 데이터. 불변이며 각 매처에 주입된다.
type Catalog struct {
	Brands           *BrandCatalog
	Ingredients      *IngredientDictionary
	BeverageKeywords *KeywordSet
	NonFoodLabels    *KeywordSet
	LabelNames       []LabelTranslation
	FallbackNames    []CategoryKeyword
}
