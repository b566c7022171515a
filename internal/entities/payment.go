package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "efectivo"
	PaymentTransfer PaymentMethod = "transferencia"
	PaymentCard     PaymentMethod = "tarjeta"
	PaymentOther    PaymentMethod = "otro"
)

func (m PaymentMethod) String() string {
	return string(m)
}

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentTransfer, PaymentCard, PaymentOther:
		return true
	default:
		return false
	}
}

type CustomerPayment struct {
	ID            string
	PackageID     string
	CustomerID    string
	Amount        decimal.Decimal
	Currency      Currency
	PaymentMethod PaymentMethod
	PaymentDate   time.Time
	Notes         string
	CreatedBy     string
}
