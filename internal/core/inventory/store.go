package inventory

import (
	"context"
	"encoding/json"
	"fmt"

	"fridge-inventory/internal/infrastructure/config"
	"fridge-inventory/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// keyPrefix 사용자별 인벤토리 키 접두사
const keyPrefix = "inventory:"

// Store 인벤토리 영속 저장소. 사용자 ID 단위로 스냅샷 전체를 저장한다.
type Store struct {
	client *redis.Client
}

// NewStore 저장소 생성. 연결 확인까지 수행한다.
func NewStore(cfg *config.RedisConfig) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// 연결 테스트
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Store{client: client}, nil
}

// Save 인벤토리 스냅샷 저장. 실패는 호출자에게 그대로 알리며 재시도하지 않는다.
// 저장 실패가 메모리의 인벤토리 상태를 훼손하지는 않는다.
func (s *Store) Save(ctx context.Context, userID string, inv Inventory) error {
	data, err := encodeEntries(inv)
	if err != nil {
		return fmt.Errorf("failed to encode inventory: %w", err)
	}

	if err := s.client.Set(ctx, keyPrefix+userID, data, 0).Err(); err != nil {
		common.LogError("인벤토리 저장 실패",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return fmt.Errorf("failed to save inventory: %w", err)
	}

	common.LogInfo("인벤토리 저장 완료",
		zap.String("user_id", userID),
		zap.Int("entries", len(inv)),
	)
	return nil
}

// Load 저장된 인벤토리 로드. 저장본이 없는 것은 정상이며(found=false) 에러가 아니다.
// 저장된 id/quantity/confidence/source 는 그대로 복원된다.
func (s *Store) Load(ctx context.Context, userID string) (Inventory, bool, error) {
	data, err := s.client.Get(ctx, keyPrefix+userID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return Inventory{}, false, nil
		}
		common.LogError("인벤토리 로드 실패",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return nil, false, fmt.Errorf("failed to load inventory: %w", err)
	}

	inv, err := decodeEntries(data)
	if err != nil {
		return nil, false, fmt.Errorf("failed to decode inventory: %w", err)
	}
	return inv, true, nil
}

// Delete 사용자 인벤토리 저장본 삭제 (전체 비우기에 사용)
func (s *Store) Delete(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, keyPrefix+userID).Err(); err != nil {
		return fmt.Errorf("failed to delete inventory: %w", err)
	}
	return nil
}

// Close 저장소 연결 종료
func (s *Store) Close() error {
	return s.client.Close()
}

// encodeEntries 스냅샷 직렬화
func encodeEntries(inv Inventory) ([]byte, error) {
	return json.Marshal(inv)
}

// decodeEntries 스냅샷 복원
func decodeEntries(data []byte) (Inventory, error) {
	var inv Inventory
	if err := json.Unmarshal(data, &inv); err != nil {
		return nil, err
	}
	if inv == nil {
		inv = Inventory{}
	}
	return inv, nil
}
