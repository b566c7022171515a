package dispatch

import (
	"ojitos/internal/entities"
)

func ToDomain(d *DispatchRelationDB) *entities.DispatchRelation {
	if d == nil {
		return nil
	}

	return &entities.DispatchRelation{
		ID:                   d.ID,
		DispatchDate:         d.DispatchDate,
		TotalPackages:        d.TotalPackages,
		TotalWeight:          d.TotalWeight,
		TotalFreight:         d.TotalFreight,
		TotalAmountToCollect: d.TotalAmountToCollect,
		Status:               entities.PackageStatus(d.Status),
		Notes:                d.Notes,
		CreatedAt:            d.CreatedAt,
	}
}

func FromDomain(d *entities.DispatchRelation) *DispatchRelationDB {
	if d == nil {
		return nil
	}

	return &DispatchRelationDB{
		ID:                   d.ID,
		DispatchDate:         d.DispatchDate,
		TotalPackages:        d.TotalPackages,
		TotalWeight:          d.TotalWeight,
		TotalFreight:         d.TotalFreight,
		TotalAmountToCollect: d.TotalAmountToCollect,
		Status:               d.Status.String(),
		Notes:                d.Notes,
		CreatedAt:            d.CreatedAt,
	}
}

func ToDomainList(relationsDB []DispatchRelationDB) []entities.DispatchRelation {
	if len(relationsDB) == 0 {
		return []entities.DispatchRelation{}
	}

	result := make([]entities.DispatchRelation, len(relationsDB))
	for i, relationDB := range relationsDB {
		result[i] = *ToDomain(&relationDB)
	}
	return result
}
