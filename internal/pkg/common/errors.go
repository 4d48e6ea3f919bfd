package common

import (
	"errors"
	"net/http"
)

// ErrorResponse API 에러 응답 구조
type ErrorResponse struct {
	Code    string `json:"code"`              // 에러 코드
	Message string `json:"message"`           // 에러 메시지
	Details string `json:"details,omitempty"` // 상세 정보 (개발 모드에서만)
}

// CustomError 커스텀 에러 타입
type CustomError struct {
	Code    string // 에러 코드
	Message string // 에러 메시지
	Err     error  // 원본 에러
	Status  int    // HTTP 상태 코드
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap errors.Is/As 체인 지원
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewError 새로운 커스텀 에러 생성
func NewError(code string, message string, status int, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// ValidationError 입력 검증 에러
type ValidationError struct {
	message string
}

// Error error 인터페이스 구현
func (e *ValidationError) Error() string {
	return e.message
}

// NewValidationError 새로운 검증 에러 생성
func NewValidationError(message string) error {
	return &ValidationError{
		message: message,
	}
}

// IsValidationError 검증 에러 여부 확인
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// 사전 정의 에러 코드
const (
	// 클라이언트 에러 (4xx)
	ErrCodeInvalidRequest   = "INVALID_REQUEST"   // 400
	ErrCodeNotFound         = "NOT_FOUND"         // 404
	ErrCodeConflict         = "CONFLICT"          // 409
	ErrCodeTooManyRequests  = "TOO_MANY_REQUESTS" // 429

	// 서버 에러 (5xx)
	ErrCodeInternalError      = "INTERNAL_ERROR"      // 500
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE" // 503

	// 도메인 에러
	ErrCodeAnalysisInProgress = "ANALYSIS_IN_PROGRESS"
	ErrCodePersistenceFailure = "PERSISTENCE_FAILURE"
)

// 사전 정의 에러
var (
	// 클라이언트 에러
	ErrInvalidRequest  = NewError(ErrCodeInvalidRequest, "잘못된 요청", http.StatusBadRequest, nil)
	ErrNotFound        = NewError(ErrCodeNotFound, "리소스가 존재하지 않음", http.StatusNotFound, nil)
	ErrTooManyRequests = NewError(ErrCodeTooManyRequests, "요청이 너무 많음", http.StatusTooManyRequests, nil)

	// 서버 에러
	ErrInternalError      = NewError(ErrCodeInternalError, "서버 내부 에러", http.StatusInternalServerError, nil)
	ErrServiceUnavailable = NewError(ErrCodeServiceUnavailable, "서비스를 일시적으로 사용할 수 없음", http.StatusServiceUnavailable, nil)

	// 도메인 에러
	ErrInvalidImageFormat = NewError("INVALID_IMAGE_FORMAT", "잘못된 이미지 형식", http.StatusBadRequest, nil)
	ErrInvalidImageSize   = NewError("INVALID_IMAGE_SIZE", "이미지 크기 제한 초과", http.StatusBadRequest, nil)
	ErrAnalysisInProgress = NewError(ErrCodeAnalysisInProgress, "분석이 이미 진행 중", http.StatusConflict, nil)
	ErrPersistenceFailure = NewError(ErrCodePersistenceFailure, "인벤토리 저장소 에러", http.StatusServiceUnavailable, nil)
	ErrReasoningQuota     = NewError("REASONING_QUOTA_EXCEEDED", "추론 서비스 할당량 초과", http.StatusServiceUnavailable, nil)
)
