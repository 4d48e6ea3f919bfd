package infer

import (
	"regexp"
	"strings"
)

var (
	// 한글/영숫자/공백 이외의 문자 제거
	nonTextPattern = regexp.MustCompile(`[^0-9A-Za-z가-힣ㄱ-ㅎㅏ-ㅣ\s]+`)
	// 연속 공백 축약
	multiSpacePattern = regexp.MustCompile(`\s+`)
)

// Normalize OCR 원문 정규화. 기호를 제거하고 공백을 하나로 축약한다.
// 입력이 비어 있으면 빈 문자열을 반환하며 에러는 발생하지 않는다.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	cleaned := nonTextPattern.ReplaceAllString(raw, " ")
	cleaned = multiSpacePattern.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}
