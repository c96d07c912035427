package partner

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/retailpos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// DefaultCreditLimit is applied to new customers unless overridden
var DefaultCreditLimit = decimal.NewFromInt(50000)

// Customer represents a buyer with an optional running credit balance.
// Walk-in sales carry no customer at all; a Customer row exists only for
// known buyers who may purchase on credit.
type Customer struct {
	shared.TenantAggregateRoot
	Name          string          `gorm:"type:varchar(200);not null"`
	Phone         string          `gorm:"type:varchar(32);index"`
	Address       string          `gorm:"type:text"`
	CreditBalance decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	CreditLimit   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:50000"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a new customer
func NewCustomer(tenantID uuid.UUID, name, phone, address string) (*Customer, error) {
	if err := validatePartnerName(name); err != nil {
		return nil, err
	}

	customer := &Customer{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Name:                strings.TrimSpace(name),
		Phone:               strings.TrimSpace(phone),
		Address:             address,
		CreditBalance:       decimal.Zero,
		CreditLimit:         DefaultCreditLimit,
	}

	customer.AddDomainEvent(NewCustomerCreatedEvent(customer))

	return customer, nil
}

// Update updates the customer's contact details
func (c *Customer) Update(name, phone, address string) error {
	if err := validatePartnerName(name); err != nil {
		return err
	}

	c.Name = strings.TrimSpace(name)
	c.Phone = strings.TrimSpace(phone)
	c.Address = address
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// SetCreditLimit updates the credit limit
func (c *Customer) SetCreditLimit(limit decimal.Decimal) error {
	if limit.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Credit limit cannot be negative")
	}
	c.CreditLimit = limit
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}

// AddCredit increases the outstanding balance after a credit sale.
// The limit is informational only; exceeding it does not block the sale.
func (c *Customer) AddCredit(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Credit amount cannot be negative")
	}

	c.CreditBalance = c.CreditBalance.Add(amount)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewCustomerCreditChangedEvent(c, amount))

	return nil
}

// SettleCredit reduces the outstanding balance by a payment or return
// refund. Overpayment floors the balance at zero rather than going negative.
func (c *Customer) SettleCredit(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Settlement amount cannot be negative")
	}

	c.CreditBalance = c.CreditBalance.Sub(amount)
	if c.CreditBalance.IsNegative() {
		c.CreditBalance = decimal.Zero
	}
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	c.AddDomainEvent(NewCustomerCreditChangedEvent(c, amount.Neg()))

	return nil
}

// HasOutstandingCredit returns true while the customer owes anything
func (c *Customer) HasOutstandingCredit() bool {
	return c.CreditBalance.IsPositive()
}

func validatePartnerName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_INPUT", "Name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_INPUT", "Name cannot exceed 200 characters")
	}
	return nil
}
