package vision

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Formatter 이미지 입력 검증과 형식 통일. 디코딩은 하지 않는다.
// 실제 해석은 OCR/탐지 협력 서비스의 몫이다.
type Formatter struct {
	maxSizeBytes int64
}

// NewFormatter 이미지 포매터 생성
func NewFormatter(maxSizeBytes int64) *Formatter {
	return &Formatter{maxSizeBytes: maxSizeBytes}
}

// Format 입력을 data URI 형식으로 통일. base64 유효성과 크기 제한을 검사한다.
func (f *Formatter) Format(imageData string) (string, error) {
	imageData = strings.TrimSpace(imageData)
	if imageData == "" {
		return "", fmt.Errorf("invalid image: image data is empty")
	}

	payload := imageData
	if strings.HasPrefix(imageData, "data:image/") {
		idx := strings.Index(imageData, "base64,")
		if idx < 0 {
			return "", fmt.Errorf("invalid image: unsupported data URI encoding")
		}
		payload = imageData[idx+len("base64,"):]
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("invalid image: malformed base64 data: %w", err)
	}
	if int64(len(raw)) > f.maxSizeBytes {
		return "", fmt.Errorf("image size exceeds maximum limit of %d bytes", f.maxSizeBytes)
	}

	if strings.HasPrefix(imageData, "data:image/") {
		return imageData, nil
	}
	return "data:image/jpeg;base64," + payload, nil
}
