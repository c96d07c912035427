package trade

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalesReturn(t *testing.T) {
	t.Run("accumulates refund across items", func(t *testing.T) {
		r, err := NewSalesReturn(uuid.New(), "SR-2026-00001", time.Now(), "damaged packaging")
		require.NoError(t, err)

		require.NoError(t, r.AddItem(uuid.New(), 2, decimal.NewFromInt(360)))
		require.NoError(t, r.AddItem(uuid.New(), 1, decimal.NewFromInt(150)))
		require.NoError(t, r.Finalize())

		assert.True(t, r.TotalRefund.Equal(decimal.NewFromInt(510)))
		assert.Len(t, r.GetDomainEvents(), 1)
	})

	t.Run("rejects empty return", func(t *testing.T) {
		r, err := NewSalesReturn(uuid.New(), "SR-2026-00002", time.Now(), "")
		require.NoError(t, err)
		assert.Error(t, r.Finalize())
	})

	t.Run("rejects negative refund", func(t *testing.T) {
		r, err := NewSalesReturn(uuid.New(), "SR-2026-00003", time.Now(), "")
		require.NoError(t, err)
		assert.Error(t, r.AddItem(uuid.New(), 1, decimal.NewFromInt(-5)))
	})
}
