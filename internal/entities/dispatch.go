package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type DispatchRelation struct {
	ID                   string
	DispatchDate         time.Time
	TotalPackages        int
	TotalWeight          decimal.Decimal
	TotalFreight         decimal.Decimal
	TotalAmountToCollect decimal.Decimal
	Status               PackageStatus
	Notes                string
	CreatedAt            time.Time
}

type DispatchPackage struct {
	DispatchID string
	PackageID  string
	CreatedAt  time.Time
}

type DispatchCreate struct {
	DispatchDate time.Time
	PackageIDs   []string
	Notes        string
}

type DispatchTotals struct {
	Packages        int
	Weight          decimal.Decimal
	Freight         decimal.Decimal
	AmountToCollect decimal.Decimal
}

type DispatchDetails struct {
	DispatchRelation
	Packages []Package
}

// DispatchNumber labels a package as "dispatch N of Total".
type DispatchNumber struct {
	DispatchNumber  int
	TotalDispatches int
}
