package parcel

import (
	"time"

	"github.com/shopspring/decimal"
)

type PackageDB struct {
	ID              string
	TrackingNumber  string
	CustomerID      string
	CustomerName    string
	TripID          *string
	Origin          string
	Destination     string
	Description     string
	Weight          decimal.Decimal
	Freight         decimal.Decimal
	AmountToCollect decimal.NullDecimal
	Currency        string
	Status          string
	DeliveredAt     *time.Time
	DeliveredBy     *string
	DeletedAt       *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type PackageModifyDB struct {
	TrackingNumber  *string
	CustomerID      *string
	TripID          *string
	Origin          *string
	Destination     *string
	Description     *string
	Weight          *decimal.Decimal
	Freight         *decimal.Decimal
	AmountToCollect decimal.NullDecimal
	Currency        *string
	Status          *string
}

type RouteFreightRateDB struct {
	Origin        string
	Destination   string
	RatePerKg     decimal.Decimal
	MinimumCharge decimal.Decimal
}
