package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

type CustomerPaymentDB struct {
	ID            string
	PackageID     string
	CustomerID    string
	Amount        decimal.Decimal
	Currency      string
	PaymentMethod string
	PaymentDate   time.Time
	Notes         string
	CreatedBy     string
}

// procedurePaymentDB is one element of the payments argument of
// deliver_package_with_payment.
type procedurePaymentDB struct {
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	PaymentMethod string          `json:"payment_method"`
	PaymentDate   time.Time       `json:"payment_date"`
	Notes         string          `json:"notes"`
	CreatedBy     string          `json:"created_by"`
}

type PackageDebtDB struct {
	PackageID     string
	CustomerID    string
	Amount        decimal.Decimal
	Currency      string
	PendingAmount decimal.Decimal
	Status        string
}
