package entities

import "github.com/shopspring/decimal"

type DebtStatus string

const (
	DebtPending DebtStatus = "pending"
	DebtPaid    DebtStatus = "paid"
)

func (s DebtStatus) String() string {
	return string(s)
}

// PackageDebt is the stored projection of a package's pending amount.
type PackageDebt struct {
	PackageID     string
	CustomerID    string
	Amount        decimal.Decimal
	Currency      Currency
	PendingAmount decimal.Decimal
	Status        DebtStatus
}

// DebtSource is a delivered package joined with the traveler of its trip.
type DebtSource struct {
	Package
	TravelerID *string
}

// Amounts holds one running total per currency.
type Amounts map[Currency]decimal.Decimal

func (a Amounts) Add(currency Currency, amount decimal.Decimal) {
	a[currency] = a[currency].Add(amount)
}

type DebtItem struct {
	PackageID      string
	TrackingNumber string
	CustomerID     string
	CustomerName   string
	TravelerID     *string
	Currency       Currency
	Amount         decimal.Decimal
	Paid           decimal.Decimal
	PendingAmount  decimal.Decimal
}

type DebtAggregate struct {
	ByCustomer map[string]Amounts
	ByTraveler map[string]Amounts
}

type DebtReport struct {
	DebtAggregate
	Items []DebtItem
}
