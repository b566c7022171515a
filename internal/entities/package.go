package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type PackageStatus string

const (
	StatusReceived    PackageStatus = "recibido"
	StatusProcessed   PackageStatus = "procesado"
	StatusWarehouse   PackageStatus = "bodega"
	StatusPending     PackageStatus = "pending"
	StatusArrived     PackageStatus = "arrived"
	StatusTransit     PackageStatus = "transito"
	StatusInTransit   PackageStatus = "in_transit"
	StatusDispatched  PackageStatus = "despachado"
	StatusDestination PackageStatus = "en_destino"
	StatusDelivered   PackageStatus = "delivered"
)

var PackageStatuses = []PackageStatus{
	StatusReceived,
	StatusProcessed,
	StatusWarehouse,
	StatusPending,
	StatusArrived,
	StatusTransit,
	StatusInTransit,
	StatusDispatched,
	StatusDestination,
	StatusDelivered,
}

func (s PackageStatus) String() string {
	return string(s)
}

func (s PackageStatus) IsValid() bool {
	for _, known := range PackageStatuses {
		if s == known {
			return true
		}
	}
	return false
}

type Currency string

const (
	CurrencyCOP Currency = "COP"
	CurrencyAWG Currency = "AWG"
)

func (c Currency) String() string {
	return string(c)
}

func (c Currency) IsValid() bool {
	return c == CurrencyCOP || c == CurrencyAWG
}

type Package struct {
	ID             string
	TrackingNumber string
	CustomerID     string
	// CustomerName is filled by joined reads and empty otherwise.
	CustomerName string
	TripID       *string
	Origin       string
	Destination  string
	Description  string
	Weight       decimal.Decimal
	Freight      decimal.Decimal
	// AmountToCollect is denominated in Currency; nil means nothing to collect.
	AmountToCollect *decimal.Decimal
	Currency        Currency
	Status          PackageStatus
	DeliveredAt     *time.Time
	DeliveredBy     *string
	DeletedAt       *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CollectAmount returns amount_to_collect, treating null as zero.
func (p Package) CollectAmount() decimal.Decimal {
	if p.AmountToCollect == nil {
		return decimal.Zero
	}
	return *p.AmountToCollect
}

type PackageModify struct {
	ID              *string
	TrackingNumber  *string
	CustomerID      *string
	TripID          *string
	Origin          *string
	Destination     *string
	Description     *string
	Weight          *decimal.Decimal
	Freight         *decimal.Decimal
	AmountToCollect *decimal.Decimal
	Currency        *Currency
	Status          *PackageStatus
}

type PackageFilter struct {
	Status     *PackageStatus
	CustomerID *string
	TripID     *string
}

// PackageDetails is a package with its reconciled payment state.
type PackageDetails struct {
	Package
	Payments      []CustomerPayment
	PendingAmount decimal.Decimal
}

// DeliveryState is what the delivery step writes to a package and what its
// compensation restores.
type DeliveryState struct {
	Status      PackageStatus
	DeliveredAt *time.Time
	DeliveredBy *string
}

type RouteFreightRate struct {
	Origin        string
	Destination   string
	RatePerKg     decimal.Decimal
	MinimumCharge decimal.Decimal
}
