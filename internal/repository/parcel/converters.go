package parcel

import (
	"ojitos/internal/entities"
)

func ToDomain(p *PackageDB) *entities.Package {
	if p == nil {
		return nil
	}

	pkg := &entities.Package{
		ID:             p.ID,
		TrackingNumber: p.TrackingNumber,
		CustomerID:     p.CustomerID,
		CustomerName:   p.CustomerName,
		TripID:         p.TripID,
		Origin:         p.Origin,
		Destination:    p.Destination,
		Description:    p.Description,
		Weight:         p.Weight,
		Freight:        p.Freight,
		Currency:       entities.Currency(p.Currency),
		Status:         entities.PackageStatus(p.Status),
		DeliveredAt:    p.DeliveredAt,
		DeliveredBy:    p.DeliveredBy,
		DeletedAt:      p.DeletedAt,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	if p.AmountToCollect.Valid {
		amount := p.AmountToCollect.Decimal
		pkg.AmountToCollect = &amount
	}
	return pkg
}

func FromDomainModify(packageModify *entities.PackageModify) *PackageModifyDB {
	if packageModify == nil {
		return nil
	}

	packageDB := &PackageModifyDB{
		TrackingNumber: packageModify.TrackingNumber,
		CustomerID:     packageModify.CustomerID,
		TripID:         packageModify.TripID,
		Origin:         packageModify.Origin,
		Destination:    packageModify.Destination,
		Description:    packageModify.Description,
		Weight:         packageModify.Weight,
		Freight:        packageModify.Freight,
	}

	if packageModify.AmountToCollect != nil {
		packageDB.AmountToCollect.Decimal = *packageModify.AmountToCollect
		packageDB.AmountToCollect.Valid = true
	}
	if packageModify.Currency != nil {
		currency := packageModify.Currency.String()
		packageDB.Currency = &currency
	}
	if packageModify.Status != nil {
		status := packageModify.Status.String()
		packageDB.Status = &status
	}

	return packageDB
}

func ToDomainList(packagesDB []PackageDB) []entities.Package {
	if len(packagesDB) == 0 {
		return []entities.Package{}
	}

	result := make([]entities.Package, len(packagesDB))
	for i, packageDB := range packagesDB {
		result[i] = *ToDomain(&packageDB)
	}
	return result
}

func rateToDomain(r *RouteFreightRateDB) *entities.RouteFreightRate {
	return &entities.RouteFreightRate{
		Origin:        r.Origin,
		Destination:   r.Destination,
		RatePerKg:     r.RatePerKg,
		MinimumCharge: r.MinimumCharge,
	}
}
