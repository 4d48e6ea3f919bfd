package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeEntries(t *testing.T) {
	t.Run("모든 필드 보존", func(t *testing.T) {
		inv := Inventory{
			{ID: 1, Name: "사과", Quantity: 3, Confidence: 0.95, Source: SourceDetection},
			{ID: 4, Name: "매일 매일두유", Quantity: 1, Confidence: 0.8, Source: SourceOCRCascade},
		}

		data, err := encodeEntries(inv)
		require.NoError(t, err)

		got, err := decodeEntries(data)
		require.NoError(t, err)
		assert.Equal(t, inv, got)
	})

	t.Run("빈 인벤토리", func(t *testing.T) {
		data, err := encodeEntries(Inventory{})
		require.NoError(t, err)

		got, err := decodeEntries(data)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("null 은 빈 인벤토리로 복원", func(t *testing.T) {
		got, err := decodeEntries([]byte("null"))
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("손상된 데이터는 에러", func(t *testing.T) {
		_, err := decodeEntries([]byte("{broken"))
		assert.Error(t, err)
	})
}
