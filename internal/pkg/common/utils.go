package common

import (
	"github.com/google/uuid"
)

// GenerateUUID UUID 생성
func GenerateUUID() string {
	return uuid.New().String()
}
