package inventory

import (
	"strings"

	"fridge-inventory/internal/pkg/common"
)

// Source 항목 출처. 어떤 전략이 이 항목을 만들었는지 기록한다.
type Source string

const (
	SourceManual            Source = "manual"
	SourceDetection         Source = "detection"
	SourceOCRCascade        Source = "ocr_cascade"
	SourceExternalReasoning Source = "external_reasoning"
)

// defaultConfidence 신뢰도가 지정되지 않은 항목의 기본값
const defaultConfidence = 0.8

// Item 캐스케이드/라벨 리졸버/수동 입력이 만들어 리콘사일러가 소비하는 항목
type Item struct {
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Confidence float64 `json:"confidence"`
	Source     Source  `json:"source"`
}

// Entry 병합된 인벤토리 항목
type Entry struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Confidence float64 `json:"confidence"`
	Source     Source  `json:"source"`
}

// Inventory 인벤토리 스냅샷. 모든 연산은 원본을 바꾸지 않고 새 스냅샷을 돌려준다.
type Inventory []Entry

// normalizeKey 이름 비교용 정규화. 저장되는 이름은 최초 삽입 시의 원형을 유지한다.
func normalizeKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// clampConfidence 신뢰도를 [0,1] 구간으로 제한
func clampConfidence(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}

// nextID 다음 ID. 기존 최대값+1, 비어 있으면 1. 삭제된 ID 는 재사용하지 않는다.
func nextID(inv Inventory) int {
	max := 0
	for _, e := range inv {
		if e.ID > max {
			max = e.ID
		}
	}
	return max + 1
}

// Reconcile 항목 배치를 인벤토리에 병합한 새 스냅샷 반환.
// 이름이 (대소문자 무시, 공백 제거 기준) 같으면 수량을 더하고 신뢰도는 최대값,
// 출처는 새 항목 것으로 바꾼다. 없으면 새 ID 를 부여해 뒤에 붙인다.
func Reconcile(current Inventory, items []Item) Inventory {
	next := make(Inventory, len(current))
	copy(next, current)

	for _, item := range items {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			continue
		}
		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}
		confidence := clampConfidence(item.Confidence)
		if confidence == 0 {
			confidence = defaultConfidence
		}

		key := normalizeKey(name)
		merged := false
		for i := range next {
			if normalizeKey(next[i].Name) != key {
				continue
			}
			next[i].Quantity += quantity
			if confidence > next[i].Confidence {
				next[i].Confidence = confidence
			}
			next[i].Source = item.Source
			merged = true
			break
		}
		if merged {
			continue
		}

		next = append(next, Entry{
			ID:         nextID(next),
			Name:       name,
			Quantity:   quantity,
			Confidence: confidence,
			Source:     item.Source,
		})
	}

	return next
}

// AddManual 수동 입력 추가. 이름이 비었거나 수량이 1 미만이면 검증 에러.
func AddManual(current Inventory, name string, quantity int) (Inventory, error) {
	if strings.TrimSpace(name) == "" {
		return nil, common.NewValidationError("이름은 비어 있을 수 없습니다")
	}
	if quantity < 1 {
		return nil, common.NewValidationError("수량은 1 이상이어야 합니다")
	}
	return Reconcile(current, []Item{{
		Name:     name,
		Quantity: quantity,
		Source:   SourceManual,
	}}), nil
}

// Remove 해당 ID 항목을 제거한 새 스냅샷 반환. 남은 항목의 ID 는 바꾸지 않는다.
func Remove(current Inventory, id int) Inventory {
	next := make(Inventory, 0, len(current))
	for _, e := range current {
		if e.ID == id {
			continue
		}
		next = append(next, e)
	}
	return next
}

// Clear 빈 인벤토리 반환. 이후 첫 삽입은 ID 1 부터 다시 시작한다.
func Clear() Inventory {
	return Inventory{}
}
