package parcel

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"ojitos/internal/entities"
)

const trackingPrefix = "EO"

// Freight prices a parcel on a route: weight times the per-kilo rate, never
// less than the route minimum. Pesos carry no cents.
func Freight(rate entities.RouteFreightRate, weight decimal.Decimal) decimal.Decimal {
	return decimal.Max(weight.Mul(rate.RatePerKg), rate.MinimumCharge).Round(0)
}

// NewTrackingNumber builds numbers like EO-260314-3FA29C.
func NewTrackingNumber(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return fmt.Sprintf("%s-%s-%s", trackingPrefix, now.Format("060102"), strings.ToUpper(suffix))
}
