package partner

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCustomer(t *testing.T) *Customer {
	t.Helper()
	c, err := NewCustomer(uuid.New(), "Ahmed Khan", "0300-1234567", "Shop 12, Main Bazaar")
	require.NoError(t, err)
	return c
}

func TestNewCustomer(t *testing.T) {
	t.Run("creates customer with default credit limit", func(t *testing.T) {
		c := newTestCustomer(t)
		assert.Equal(t, "Ahmed Khan", c.Name)
		assert.True(t, c.CreditBalance.IsZero())
		assert.True(t, c.CreditLimit.Equal(DefaultCreditLimit))
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewCustomer(uuid.New(), "", "", "")
		assert.Error(t, err)
	})
}

func TestCustomerAddCredit(t *testing.T) {
	t.Run("accumulates balance", func(t *testing.T) {
		c := newTestCustomer(t)
		require.NoError(t, c.AddCredit(decimal.NewFromInt(1500)))
		require.NoError(t, c.AddCredit(decimal.NewFromInt(500)))
		assert.True(t, c.CreditBalance.Equal(decimal.NewFromInt(2000)))
		assert.True(t, c.HasOutstandingCredit())
	})

	t.Run("limit does not block credit", func(t *testing.T) {
		c := newTestCustomer(t)
		over := c.CreditLimit.Add(decimal.NewFromInt(10000))
		require.NoError(t, c.AddCredit(over))
		assert.True(t, c.CreditBalance.Equal(over))
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		c := newTestCustomer(t)
		assert.Error(t, c.AddCredit(decimal.NewFromInt(-1)))
	})
}

func TestCustomerSettleCredit(t *testing.T) {
	t.Run("reduces balance", func(t *testing.T) {
		c := newTestCustomer(t)
		require.NoError(t, c.AddCredit(decimal.NewFromInt(2000)))
		require.NoError(t, c.SettleCredit(decimal.NewFromInt(800)))
		assert.True(t, c.CreditBalance.Equal(decimal.NewFromInt(1200)))
	})

	t.Run("overpayment floors at zero", func(t *testing.T) {
		c := newTestCustomer(t)
		require.NoError(t, c.AddCredit(decimal.NewFromInt(500)))
		require.NoError(t, c.SettleCredit(decimal.NewFromInt(900)))
		assert.True(t, c.CreditBalance.IsZero())
		assert.False(t, c.HasOutstandingCredit())
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		c := newTestCustomer(t)
		assert.Error(t, c.SettleCredit(decimal.NewFromInt(-10)))
	})
}
