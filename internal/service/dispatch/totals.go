package dispatch

import (
	"github.com/shopspring/decimal"
	"ojitos/internal/entities"
)

// ComputeTotals sums the manifest figures of a dispatch. Amounts to collect
// are added as stored, whatever their currency.
func ComputeTotals(packages []entities.Package) entities.DispatchTotals {
	totals := entities.DispatchTotals{
		Packages:        len(packages),
		Weight:          decimal.Zero,
		Freight:         decimal.Zero,
		AmountToCollect: decimal.Zero,
	}
	for _, pkg := range packages {
		totals.Weight = totals.Weight.Add(pkg.Weight)
		totals.Freight = totals.Freight.Add(pkg.Freight)
		totals.AmountToCollect = totals.AmountToCollect.Add(pkg.CollectAmount())
	}
	return totals
}

// orderByIDs returns packages in the order their ids were requested.
func orderByIDs(packages []entities.Package, ids []string) ([]entities.Package, bool) {
	byID := make(map[string]entities.Package, len(packages))
	for _, pkg := range packages {
		byID[pkg.ID] = pkg
	}

	ordered := make([]entities.Package, 0, len(ids))
	for _, id := range ids {
		pkg, ok := byID[id]
		if !ok {
			return nil, false
		}
		ordered = append(ordered, pkg)
	}
	return ordered, true
}
