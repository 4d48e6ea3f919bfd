package pantry

import (
	"net/http"
	"strconv"

	"fridge-inventory/internal/core/inventory"
	"fridge-inventory/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AddItemRequest 수동 항목 추가 요청
type AddItemRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// InventoryResponse 인벤토리 스냅샷 응답
type InventoryResponse struct {
	Inventory inventory.Inventory `json:"inventory"`
}

// HandleGetInventory 사용자 인벤토리를 조회한다.
func HandleGetInventory(store *inventory.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requestUserID(c)
		if !ok {
			return
		}

		inv, _, err := store.Load(c.Request.Context(), userID)
		if err != nil {
			respondError(c, common.ErrPersistenceFailure)
			return
		}

		c.JSON(http.StatusOK, InventoryResponse{Inventory: inv})
	}
}

// HandleAddItem 사용자가 직접 항목을 추가한다. 동일 이름이 이미 있으면 수량만 합산된다.
func HandleAddItem(store *inventory.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, common.ErrorResponse{
				Code:    common.ErrCodeInvalidRequest,
				Message: "잘못된 요청 형식",
			})
			return
		}

		ctx := c.Request.Context()
		current, _, err := store.Load(ctx, req.UserID)
		if err != nil {
			respondError(c, common.ErrPersistenceFailure)
			return
		}

		merged, err := inventory.AddManual(current, req.Name, req.Quantity)
		if err != nil {
			respondError(c, err)
			return
		}

		if err := store.Save(ctx, req.UserID, merged); err != nil {
			respondError(c, common.ErrPersistenceFailure)
			return
		}

		common.LogInfo("인벤토리 항목 추가",
			zap.String("user_id", req.UserID),
			zap.String("name", req.Name),
			zap.Int("quantity", req.Quantity))

		c.JSON(http.StatusOK, InventoryResponse{Inventory: merged})
	}
}

// HandleRemoveItem ID 로 항목을 제거한다. 없는 ID 는 변경 없이 성공으로 본다.
func HandleRemoveItem(store *inventory.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requestUserID(c)
		if !ok {
			return
		}

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, common.ErrorResponse{
				Code:    common.ErrCodeInvalidRequest,
				Message: "항목 ID 는 정수여야 합니다",
			})
			return
		}

		ctx := c.Request.Context()
		current, _, err := store.Load(ctx, userID)
		if err != nil {
			respondError(c, common.ErrPersistenceFailure)
			return
		}

		merged := inventory.Remove(current, id)

		if err := store.Save(ctx, userID, merged); err != nil {
			respondError(c, common.ErrPersistenceFailure)
			return
		}

		c.JSON(http.StatusOK, InventoryResponse{Inventory: merged})
	}
}

// HandleClearInventory 사용자 인벤토리를 비운다.
func HandleClearInventory(store *inventory.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := requestUserID(c)
		if !ok {
			return
		}

		if err := store.Delete(c.Request.Context(), userID); err != nil {
			respondError(c, common.ErrPersistenceFailure)
			return
		}

		common.LogInfo("인벤토리 초기화", zap.String("user_id", userID))

		c.JSON(http.StatusOK, InventoryResponse{Inventory: inventory.Clear()})
	}
}
