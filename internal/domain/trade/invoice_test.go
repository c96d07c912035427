package trade

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/retailpos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCashInvoice(t *testing.T) *Invoice {
	t.Helper()
	inv, err := NewInvoice(uuid.New(), "INV-2026-00001", time.Now(), nil, PaymentMethodCash)
	require.NoError(t, err)
	return inv
}

func TestNewInvoice(t *testing.T) {
	tenantID := uuid.New()

	t.Run("creates cash invoice without customer", func(t *testing.T) {
		inv, err := NewInvoice(tenantID, "INV-2026-00001", time.Now(), nil, PaymentMethodCash)
		require.NoError(t, err)
		assert.Equal(t, InvoiceStatusCompleted, inv.Status)
		assert.Nil(t, inv.CustomerID)
	})

	t.Run("credit invoice requires a customer", func(t *testing.T) {
		_, err := NewInvoice(tenantID, "INV-2026-00002", time.Now(), nil, PaymentMethodCredit)
		require.Error(t, err)
		assert.True(t, shared.IsCode(err, "INVALID_INPUT"))
	})

	t.Run("rejects unknown payment method", func(t *testing.T) {
		_, err := NewInvoice(tenantID, "INV-2026-00003", time.Now(), nil, "Cheque")
		assert.Error(t, err)
	})
}

func TestInvoiceAddItem(t *testing.T) {
	inv := newCashInvoice(t)

	require.NoError(t, inv.AddItem(uuid.New(), "Coke 1.5L", 2, decimal.NewFromInt(180)))
	require.NoError(t, inv.AddItem(uuid.New(), "Bread", 1, decimal.NewFromInt(150)))

	assert.Len(t, inv.Items, 2)
	assert.True(t, inv.TotalAmount.Equal(decimal.NewFromInt(510)))
	assert.True(t, inv.Items[0].Amount.Equal(decimal.NewFromInt(360)))

	assert.Error(t, inv.AddItem(uuid.New(), "Bad", 0, decimal.NewFromInt(10)))
}

func TestInvoiceFinalize(t *testing.T) {
	t.Run("cash sale computes change", func(t *testing.T) {
		inv := newCashInvoice(t)
		require.NoError(t, inv.AddItem(uuid.New(), "Item", 1, decimal.NewFromInt(450)))

		require.NoError(t, inv.Finalize(decimal.NewFromInt(50), decimal.NewFromInt(500)))

		assert.True(t, inv.NetAmount.Equal(decimal.NewFromInt(400)))
		assert.True(t, inv.PaidAmount.Equal(decimal.NewFromInt(500)))
		assert.True(t, inv.ChangeGiven.Equal(decimal.NewFromInt(100)))
	})

	t.Run("underpayment gives no change", func(t *testing.T) {
		inv := newCashInvoice(t)
		require.NoError(t, inv.AddItem(uuid.New(), "Item", 1, decimal.NewFromInt(500)))

		require.NoError(t, inv.Finalize(decimal.Zero, decimal.NewFromInt(300)))

		assert.True(t, inv.ChangeGiven.IsZero())
	})

	t.Run("discount above total leaves negative net", func(t *testing.T) {
		inv := newCashInvoice(t)
		require.NoError(t, inv.AddItem(uuid.New(), "Item", 1, decimal.NewFromInt(100)))

		require.NoError(t, inv.Finalize(decimal.NewFromInt(150), decimal.Zero))

		assert.True(t, inv.NetAmount.Equal(decimal.NewFromInt(-50)))
	})

	t.Run("credit sale records nothing paid", func(t *testing.T) {
		customerID := uuid.New()
		inv, err := NewInvoice(uuid.New(), "INV-2026-00009", time.Now(), &customerID, PaymentMethodCredit)
		require.NoError(t, err)
		require.NoError(t, inv.AddItem(uuid.New(), "Item", 3, decimal.NewFromInt(200)))

		// tendered amount is ignored on credit
		require.NoError(t, inv.Finalize(decimal.Zero, decimal.NewFromInt(600)))

		assert.True(t, inv.PaidAmount.IsZero())
		assert.True(t, inv.ChangeGiven.IsZero())
		assert.True(t, inv.NetAmount.Equal(decimal.NewFromInt(600)))
	})

	t.Run("rejects empty invoice", func(t *testing.T) {
		inv := newCashInvoice(t)
		assert.Error(t, inv.Finalize(decimal.Zero, decimal.Zero))
	})
}

func TestInvoiceMarkReturned(t *testing.T) {
	inv := newCashInvoice(t)
	require.NoError(t, inv.AddItem(uuid.New(), "Item", 1, decimal.NewFromInt(100)))
	require.NoError(t, inv.Finalize(decimal.Zero, decimal.NewFromInt(100)))

	require.NoError(t, inv.MarkReturned())
	assert.Equal(t, InvoiceStatusReturned, inv.Status)

	err := inv.MarkReturned()
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrAlreadyReturned))
}
