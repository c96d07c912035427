package partner

import (
	"github.com/google/uuid"
	"github.com/retailpos/backend/internal/domain/partner"
	"github.com/shopspring/decimal"
)

// CustomerRequest is the input for creating or updating a customer
type CustomerRequest struct {
	Name        string           `json:"name" binding:"required"`
	Phone       string           `json:"phone"`
	Address     string           `json:"address"`
	CreditLimit *decimal.Decimal `json:"credit_limit"`
}

// CustomerResponse is the API shape of a customer
type CustomerResponse struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	CreditBalance decimal.Decimal `json:"credit_balance"`
	CreditLimit   decimal.Decimal `json:"credit_limit"`
}

// ToCustomerResponse maps a customer aggregate to its API shape
func ToCustomerResponse(c *partner.Customer) CustomerResponse {
	return CustomerResponse{
		ID:            c.ID,
		Name:          c.Name,
		Phone:         c.Phone,
		Address:       c.Address,
		CreditBalance: c.CreditBalance,
		CreditLimit:   c.CreditLimit,
	}
}

// SupplierRequest is the input for creating or updating a supplier
type SupplierRequest struct {
	Name          string `json:"name" binding:"required"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
}

// SupplierResponse is the API shape of a supplier
type SupplierResponse struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	ContactPerson string          `json:"contact_person"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	Balance       decimal.Decimal `json:"balance"`
}

// ToSupplierResponse maps a supplier aggregate to its API shape
func ToSupplierResponse(s *partner.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:            s.ID,
		Name:          s.Name,
		ContactPerson: s.ContactPerson,
		Phone:         s.Phone,
		Address:       s.Address,
		Balance:       s.Balance,
	}
}
