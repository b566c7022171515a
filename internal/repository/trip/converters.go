package trip

import (
	"ojitos/internal/entities"
)

func ToDomain(t *TripDB) *entities.Trip {
	if t == nil {
		return nil
	}

	return &entities.Trip{
		ID:           t.ID,
		TripDate:     t.TripDate,
		Origin:       t.Origin,
		Destination:  t.Destination,
		FlightNumber: t.FlightNumber,
		TravelerID:   t.TravelerID,
		Status:       entities.TripStatus(t.Status),
		CreatedAt:    t.CreatedAt,
	}
}

func FromDomainModify(tripModify *entities.TripModify) *TripModifyDB {
	if tripModify == nil {
		return nil
	}

	tripDB := &TripModifyDB{
		TripDate:     tripModify.TripDate,
		Origin:       tripModify.Origin,
		Destination:  tripModify.Destination,
		FlightNumber: tripModify.FlightNumber,
		TravelerID:   tripModify.TravelerID,
	}
	if tripModify.Status != nil {
		status := tripModify.Status.String()
		tripDB.Status = &status
	}
	return tripDB
}

func ToDomainList(tripsDB []TripDB) []entities.Trip {
	if len(tripsDB) == 0 {
		return []entities.Trip{}
	}

	result := make([]entities.Trip, len(tripsDB))
	for i, tripDB := range tripsDB {
		result[i] = *ToDomain(&tripDB)
	}
	return result
}
