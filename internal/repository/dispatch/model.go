package dispatch

import (
	"time"

	"github.com/shopspring/decimal"
)

type DispatchRelationDB struct {
	ID                   string
	DispatchDate         time.Time
	TotalPackages        int
	TotalWeight          decimal.Decimal
	TotalFreight         decimal.Decimal
	TotalAmountToCollect decimal.Decimal
	Status               string
	Notes                string
	CreatedAt            time.Time
}
