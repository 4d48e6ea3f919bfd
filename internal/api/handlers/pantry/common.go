package pantry

import (
	"errors"
	"net/http"

	"fridge-inventory/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

// respondError 에러 종류에 따라 상태 코드와 응답 본문을 결정한다.
func respondError(c *gin.Context, err error) {
	// 검증 에러는 재입력 대상이므로 400
	if common.IsValidationError(err) {
		c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Code:    common.ErrCodeInvalidRequest,
			Message: err.Error(),
		})
		return
	}

	var custom *common.CustomError
	if errors.As(err, &custom) {
		c.JSON(custom.Status, common.ErrorResponse{
			Code:    custom.Code,
			Message: custom.Message,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, common.ErrorResponse{
		Code:    common.ErrCodeInternalError,
		Message: "서버 내부 에러",
	})
}

// requestUserID 요청에서 사용자 ID 추출 (쿼리 파라미터)
func requestUserID(c *gin.Context) (string, bool) {
	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Code:    common.ErrCodeInvalidRequest,
			Message: "user_id 가 필요합니다",
		})
		return "", false
	}
	return userID, true
}
