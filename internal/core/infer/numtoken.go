package infer

import (
	"regexp"
	"unicode/utf8"
)

// 이름+숫자 토큰 패턴. 우선순위 순서로 시도한다.
var numericTokenPatterns = []*regexp.Regexp{
	regexp.MustCompile(`[가-힣]+[0-9]+%`),       // 한글+숫자+% (예: 바나나우유250ml 의 농도 표기)
	regexp.MustCompile(`[가-힣]+[0-9]+[가-힣]*`), // 한글+숫자+선택적 한글
	regexp.MustCompile(`[가-힣]+\s[0-9]+`),      // 한글+공백+숫자
}

// minNumericTokenRunes 유효 토큰 최소 길이
const minNumericTokenRunes = 4

// ExtractNumericToken 마지막 수단으로 쓰는 "이름+숫자" 어휘 토큰 추출.
// 각 패턴에서 가장 긴 매칭을 고른 뒤, 우선순위가 앞선 패턴 중 길이 4자 이상인
// 첫 결과를 반환한다. 해당 없으면 빈 문자열.
func ExtractNumericToken(text string) string {
	if text == "" {
		return ""
	}
	for _, pattern := range numericTokenPatterns {
		matches := pattern.FindAllString(text, -1)
		if len(matches) == 0 {
			continue
		}
		longest := matches[0]
		for _, m := range matches[1:] {
			if utf8.RuneCountInString(m) > utf8.RuneCountInString(longest) {
				longest = m
			}
		}
		if utf8.RuneCountInString(longest) >= minNumericTokenRunes {
			return longest
		}
	}
	return ""
}
