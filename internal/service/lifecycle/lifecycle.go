// Package lifecycle derives customer-facing state from package statuses.
package lifecycle

import (
	"ojitos/internal/entities"
	"ojitos/internal/service/payment"
)

// Classify maps a package to its chat indicator. ok is false for statuses
// that carry no indicator.
func Classify(pkg entities.Package, payments []entities.CustomerPayment) (indicator entities.ChatIndicator, ok bool) {
	collect := pkg.CollectAmount().IsPositive()

	switch pkg.Status {
	case entities.StatusDelivered:
		if collect && payment.PendingAmount(pkg, payments).IsPositive() {
			return entities.IndicatorDeliveredPendingPayment, true
		}
		return entities.IndicatorDelivered, true
	case entities.StatusDestination, entities.StatusPending:
		if collect {
			return entities.IndicatorPendingPickupPayment, true
		}
		return entities.IndicatorPendingDelivery, true
	case entities.StatusTransit, entities.StatusInTransit, entities.StatusDispatched:
		return entities.IndicatorInTransit, true
	case entities.StatusReceived, entities.StatusProcessed, entities.StatusWarehouse, entities.StatusArrived:
		return "", false
	default:
		return "", false
	}
}

// MostCritical returns the indicator with the lowest priority number. The
// first occurrence wins a tie.
func MostCritical(indicators []entities.ChatIndicator) (entities.ChatIndicator, bool) {
	if len(indicators) == 0 {
		return "", false
	}

	best := indicators[0]
	for _, indicator := range indicators[1:] {
		if indicator.Priority() < best.Priority() {
			best = indicator
		}
	}
	return best, true
}

// CustomerIndicator classifies every package of a customer and keeps the most
// critical result.
func CustomerIndicator(
	packages []entities.Package,
	paymentsByPackage map[string][]entities.CustomerPayment,
) (entities.ChatIndicator, bool) {
	indicators := make([]entities.ChatIndicator, 0, len(packages))
	for _, pkg := range packages {
		if indicator, ok := Classify(pkg, paymentsByPackage[pkg.ID]); ok {
			indicators = append(indicators, indicator)
		}
	}
	return MostCritical(indicators)
}

// AdvanceOnPrint is the status a package takes after its label is printed.
// Only a freshly received package moves forward; reprints keep the status.
func AdvanceOnPrint(status entities.PackageStatus) entities.PackageStatus {
	if status == entities.StatusReceived {
		return entities.StatusProcessed
	}
	return status
}

func IsDispatchEligible(status entities.PackageStatus) bool {
	switch status {
	case entities.StatusReceived,
		entities.StatusProcessed,
		entities.StatusWarehouse,
		entities.StatusPending,
		entities.StatusArrived:
		return true
	case entities.StatusTransit,
		entities.StatusInTransit,
		entities.StatusDispatched,
		entities.StatusDestination,
		entities.StatusDelivered:
		return false
	default:
		return false
	}
}

func FilterDispatchEligible(packages []entities.Package) []entities.Package {
	eligible := make([]entities.Package, 0, len(packages))
	for _, pkg := range packages {
		if IsDispatchEligible(pkg.Status) {
			eligible = append(eligible, pkg)
		}
	}
	return eligible
}
