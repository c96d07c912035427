package partner

import (
	"github.com/retailpos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Event type constants for customer events
const (
	EventTypeCustomerCreated       = "partner.customer.created"
	EventTypeCustomerCreditChanged = "partner.customer.credit_changed"
)

// CustomerCreatedEvent is raised when a customer is created
type CustomerCreatedEvent struct {
	shared.BaseDomainEvent
	CustomerName string `json:"customer_name"`
}

// NewCustomerCreatedEvent creates a new CustomerCreatedEvent
func NewCustomerCreatedEvent(customer *Customer) *CustomerCreatedEvent {
	return &CustomerCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCustomerCreated, "Customer", customer.ID, customer.TenantID),
		CustomerName:    customer.Name,
	}
}

// CustomerCreditChangedEvent is raised when the credit balance moves.
// Delta is positive for credit extended, negative for settlement.
type CustomerCreditChangedEvent struct {
	shared.BaseDomainEvent
	Delta      decimal.Decimal `json:"delta"`
	NewBalance decimal.Decimal `json:"new_balance"`
}

// NewCustomerCreditChangedEvent creates a new CustomerCreditChangedEvent
func NewCustomerCreditChangedEvent(customer *Customer, delta decimal.Decimal) *CustomerCreditChangedEvent {
	return &CustomerCreditChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCustomerCreditChanged, "Customer", customer.ID, customer.TenantID),
		Delta:           delta,
		NewBalance:      customer.CreditBalance,
	}
}
