package partner

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/retailpos/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Supplier represents a vendor with a running payable balance
type Supplier struct {
	shared.TenantAggregateRoot
	Name          string          `gorm:"type:varchar(200);not null"`
	ContactPerson string          `gorm:"type:varchar(200)"`
	Phone         string          `gorm:"type:varchar(32);index"`
	Address       string          `gorm:"type:text"`
	Balance       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (Supplier) TableName() string {
	return "suppliers"
}

// NewSupplier creates a new supplier
func NewSupplier(tenantID uuid.UUID, name, contactPerson, phone, address string) (*Supplier, error) {
	if err := validatePartnerName(name); err != nil {
		return nil, err
	}

	supplier := &Supplier{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Name:                strings.TrimSpace(name),
		ContactPerson:       strings.TrimSpace(contactPerson),
		Phone:               strings.TrimSpace(phone),
		Address:             address,
		Balance:             decimal.Zero,
	}

	supplier.AddDomainEvent(NewSupplierCreatedEvent(supplier))

	return supplier, nil
}

// Update updates the supplier's contact details
func (s *Supplier) Update(name, contactPerson, phone, address string) error {
	if err := validatePartnerName(name); err != nil {
		return err
	}

	s.Name = strings.TrimSpace(name)
	s.ContactPerson = strings.TrimSpace(contactPerson)
	s.Phone = strings.TrimSpace(phone)
	s.Address = address
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// AddPayable increases what the shop owes the supplier
func (s *Supplier) AddPayable(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Payable amount cannot be negative")
	}

	s.Balance = s.Balance.Add(amount)
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	s.AddDomainEvent(NewSupplierBalanceChangedEvent(s, amount))

	return nil
}

// SettlePayable reduces what the shop owes the supplier.
// Overpayment floors the balance at zero rather than going negative.
func (s *Supplier) SettlePayable(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Settlement amount cannot be negative")
	}

	s.Balance = s.Balance.Sub(amount)
	if s.Balance.IsNegative() {
		s.Balance = decimal.Zero
	}
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	s.AddDomainEvent(NewSupplierBalanceChangedEvent(s, amount.Neg()))

	return nil
}
