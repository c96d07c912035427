package trade

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/retailpos/backend/internal/domain/audit"
	"github.com/retailpos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PaymentService handles settlement of partner balances. Both commands are
// flat decrements floored at zero; there is no per-invoice allocation.
type PaymentService struct {
	scope TransactionScope
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(scope TransactionScope) *PaymentService {
	return &PaymentService{scope: scope}
}

// ReceivePaymentRequest is the input for settling a partner balance
type ReceivePaymentRequest struct {
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Username string          `json:"username"`
}

// ReceiveCustomerPayment takes a payment against a customer's outstanding
// credit. Paying more than is owed leaves the balance at zero.
func (s *PaymentService) ReceiveCustomerPayment(ctx context.Context, tenantID, customerID uuid.UUID, req ReceivePaymentRequest) error {
	if !req.Amount.IsPositive() {
		return shared.NewDomainError("INVALID_INPUT", "Payment amount must be positive")
	}

	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		customer, err := repos.Customers().FindByIDForTenant(ctx, customerID, tenantID)
		if err != nil {
			return err
		}
		if err := customer.SettleCredit(req.Amount); err != nil {
			return err
		}
		if err := repos.Customers().SaveWithLock(ctx, customer); err != nil {
			return err
		}

		entry, err := audit.NewAuditLog(tenantID, audit.ActionPaymentReceived,
			fmt.Sprintf("Received %s from %s, balance now %s", req.Amount.StringFixed(2), customer.Name, customer.CreditBalance.StringFixed(2)),
			req.Username)
		if err != nil {
			return err
		}
		return repos.AuditLogs().Append(ctx, entry)
	})
}

// PaySupplier settles part of what the shop owes a supplier. Paying more
// than is owed leaves the balance at zero.
func (s *PaymentService) PaySupplier(ctx context.Context, tenantID, supplierID uuid.UUID, req ReceivePaymentRequest) error {
	if !req.Amount.IsPositive() {
		return shared.NewDomainError("INVALID_INPUT", "Payment amount must be positive")
	}

	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		supplier, err := repos.Suppliers().FindByIDForTenant(ctx, supplierID, tenantID)
		if err != nil {
			return err
		}
		if err := supplier.SettlePayable(req.Amount); err != nil {
			return err
		}
		if err := repos.Suppliers().SaveWithLock(ctx, supplier); err != nil {
			return err
		}

		entry, err := audit.NewAuditLog(tenantID, audit.ActionSupplierPaid,
			fmt.Sprintf("Paid %s to %s, balance now %s", req.Amount.StringFixed(2), supplier.Name, supplier.Balance.StringFixed(2)),
			req.Username)
		if err != nil {
			return err
		}
		return repos.AuditLogs().Append(ctx, entry)
	})
}
