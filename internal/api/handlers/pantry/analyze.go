package pantry

import (
	"net/http"

	"fridge-inventory/internal/core/analysis"
	"fridge-inventory/internal/core/inventory"
	"fridge-inventory/internal/core/vision"
	"fridge-inventory/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AnalyzeRequest 단건 분석 요청
type AnalyzeRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Image  string `json:"image" binding:"required"`
}

// AnalyzeResponse 단건 분석 응답
type AnalyzeResponse struct {
	Items     []inventory.Item    `json:"items"`
	Inventory inventory.Inventory `json:"inventory"`
}

// BatchAnalyzeRequest 일괄 분석 요청
type BatchAnalyzeRequest struct {
	UserID string   `json:"user_id" binding:"required"`
	Images []string `json:"images" binding:"required"`
}

// BatchAnalyzeResponse 일괄 분석 응답
type BatchAnalyzeResponse struct {
	Results   []analysis.BatchResult `json:"results"`
	Inventory inventory.Inventory    `json:"inventory"`
}

// HandleAnalyze 이미지 한 장을 분석해 인벤토리에 병합한다.
func HandleAnalyze(svc *analysis.Service, formatter *vision.Formatter, store *inventory.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := requestIDOf(c)

		var req AnalyzeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			common.LogError("잘못된 요청 형식",
				zap.Error(err),
				zap.String("request_id", requestID))
			c.JSON(http.StatusBadRequest, common.ErrorResponse{
				Code:    common.ErrCodeInvalidRequest,
				Message: "잘못된 요청 형식",
			})
			return
		}

		formatted, err := formatter.Format(req.Image)
		if err != nil {
			common.LogError("이미지 검증 실패",
				zap.Error(err),
				zap.String("request_id", requestID))
			respondError(c, common.ErrInvalidImageFormat)
			return
		}

		items, err := svc.AnalyzeOne(c.Request.Context(), formatted)
		if err != nil {
			respondError(c, err)
			return
		}

		merged, err := mergeAndSave(c, store, req.UserID, items)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, AnalyzeResponse{
			Items:     items,
			Inventory: merged,
		})
	}
}

// HandleAnalyzeBatch 이미지 여러 장을 순차 분석해 인벤토리에 병합한다.
func HandleAnalyzeBatch(svc *analysis.Service, formatter *vision.Formatter, store *inventory.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := requestIDOf(c)

		var req BatchAnalyzeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, common.ErrorResponse{
				Code:    common.ErrCodeInvalidRequest,
				Message: "잘못된 요청 형식",
			})
			return
		}

		formatted := make([]string, 0, len(req.Images))
		for _, img := range req.Images {
			f, err := formatter.Format(img)
			if err != nil {
				common.LogError("이미지 검증 실패",
					zap.Error(err),
					zap.String("request_id", requestID))
				respondError(c, common.ErrInvalidImageFormat)
				return
			}
			formatted = append(formatted, f)
		}

		results, err := svc.AnalyzeBatch(c.Request.Context(), formatted)
		if err != nil && len(results) == 0 {
			respondError(c, err)
			return
		}

		// 성공한 이미지의 항목만 병합한다. 일부 실패는 결과에 그대로 드러난다.
		var items []inventory.Item
		for _, r := range results {
			items = append(items, r.Items...)
		}

		merged, err := mergeAndSave(c, store, req.UserID, items)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, BatchAnalyzeResponse{
			Results:   results,
			Inventory: merged,
		})
	}
}

// mergeAndSave 저장소에서 인벤토리를 읽어 병합 후 저장한다.
// 저장 실패 시 병합 전 상태는 저장소에 그대로 남는다.
func mergeAndSave(c *gin.Context, store *inventory.Store, userID string, items []inventory.Item) (inventory.Inventory, error) {
	ctx := c.Request.Context()

	current, _, err := store.Load(ctx, userID)
	if err != nil {
		return nil, common.ErrPersistenceFailure
	}

	merged := inventory.Reconcile(current, items)

	if err := store.Save(ctx, userID, merged); err != nil {
		return nil, common.ErrPersistenceFailure
	}
	return merged, nil
}

// requestIDOf 요청 ID 조회, 없으면 생성
func requestIDOf(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = common.GenerateUUID()
		c.Header("X-Request-ID", requestID)
	}
	return requestID
}
