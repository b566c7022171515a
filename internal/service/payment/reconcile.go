package payment

import (
	"github.com/shopspring/decimal"
	"ojitos/internal/entities"
)

// PaidAmount sums the payments made in the package currency.
func PaidAmount(pkg entities.Package, payments []entities.CustomerPayment) decimal.Decimal {
	paid := decimal.Zero
	for _, p := range payments {
		if p.Currency != pkg.Currency {
			continue
		}
		paid = paid.Add(p.Amount)
	}
	return paid
}

// PendingAmount is amount_to_collect minus the same-currency payments,
// floored at zero. Payments in a different currency are not subtracted.
func PendingAmount(pkg entities.Package, payments []entities.CustomerPayment) decimal.Decimal {
	pending := pkg.CollectAmount().Sub(PaidAmount(pkg, payments))
	if pending.IsNegative() {
		return decimal.Zero
	}
	return pending
}

func GroupByPackage(payments []entities.CustomerPayment) map[string][]entities.CustomerPayment {
	grouped := make(map[string][]entities.CustomerPayment, len(payments))
	for _, p := range payments {
		grouped[p.PackageID] = append(grouped[p.PackageID], p)
	}
	return grouped
}

func isCollectable(pkg entities.Package) bool {
	return pkg.Status == entities.StatusDelivered && pkg.CollectAmount().IsPositive()
}

// AggregateDebts folds delivered packages with something to collect into
// per-customer and per-traveler totals. Only packages still owing money are
// reported.
func AggregateDebts(sources []entities.DebtSource, payments []entities.CustomerPayment) entities.DebtReport {
	byPackage := GroupByPackage(payments)
	report := entities.DebtReport{
		DebtAggregate: entities.DebtAggregate{
			ByCustomer: make(map[string]entities.Amounts),
			ByTraveler: make(map[string]entities.Amounts),
		},
		Items: []entities.DebtItem{},
	}

	for _, src := range sources {
		if !isCollectable(src.Package) {
			continue
		}

		packagePayments := byPackage[src.ID]
		pending := PendingAmount(src.Package, packagePayments)
		if !pending.IsPositive() {
			continue
		}

		report.Items = append(report.Items, entities.DebtItem{
			PackageID:      src.ID,
			TrackingNumber: src.TrackingNumber,
			CustomerID:     src.CustomerID,
			CustomerName:   src.CustomerName,
			TravelerID:     src.TravelerID,
			Currency:       src.Currency,
			Amount:         src.CollectAmount(),
			Paid:           PaidAmount(src.Package, packagePayments),
			PendingAmount:  pending,
		})

		addTo(report.ByCustomer, src.CustomerID, src.Currency, pending)
		if src.TravelerID != nil {
			addTo(report.ByTraveler, *src.TravelerID, src.Currency, pending)
		}
	}

	return report
}

func addTo(totals map[string]entities.Amounts, key string, currency entities.Currency, amount decimal.Decimal) {
	amounts, ok := totals[key]
	if !ok {
		amounts = entities.Amounts{}
		totals[key] = amounts
	}
	amounts.Add(currency, amount)
}

// ProjectDebt derives the stored debt row of a package. ok is false when the
// package has nothing to collect.
func ProjectDebt(pkg entities.Package, payments []entities.CustomerPayment) (debt entities.PackageDebt, ok bool) {
	if !isCollectable(pkg) {
		return entities.PackageDebt{}, false
	}

	pending := PendingAmount(pkg, payments)
	status := entities.DebtPending
	if pending.IsZero() {
		status = entities.DebtPaid
	}

	return entities.PackageDebt{
		PackageID:     pkg.ID,
		CustomerID:    pkg.CustomerID,
		Amount:        pkg.CollectAmount(),
		Currency:      pkg.Currency,
		PendingAmount: pending,
		Status:        status,
	}, true
}

func ProjectDebts(sources []entities.DebtSource, payments []entities.CustomerPayment) []entities.PackageDebt {
	byPackage := GroupByPackage(payments)
	debts := make([]entities.PackageDebt, 0, len(sources))
	for _, src := range sources {
		if debt, ok := ProjectDebt(src.Package, byPackage[src.ID]); ok {
			debts = append(debts, debt)
		}
	}
	return debts
}
