package trip

import (
	"context"
	"fmt"

	"ojitos/internal/entities"
	"ojitos/internal/repository"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, tripModifyEntity entities.TripModify) (string, error) {
	tripModifyModel := FromDomainModify(&tripModifyEntity)
	query := `INSERT INTO trips (trip_date, origin, destination, flight_number, traveler_id, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id string
	err := r.querier.QueryRow(
		ctx,
		query,
		tripModifyModel.TripDate,
		tripModifyModel.Origin,
		tripModifyModel.Destination,
		tripModifyModel.FlightNumber,
		tripModifyModel.TravelerID,
		tripModifyModel.Status,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return "", entities.ErrDuplicateFlight
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return "", entities.ErrTravelerNotFound
		}
		return "", fmt.Errorf("unexpected trip repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Trip, error) {
	query := `
	SELECT id, trip_date, origin, destination, flight_number, traveler_id, status, created_at
	FROM trips
	ORDER BY trip_date DESC, created_at DESC`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected trip repository getall error: %w", err)
	}
	defer rows.Close()

	tripModels := make([]TripDB, 0, 8)
	for rows.Next() {
		var tripModel TripDB
		err := rows.Scan(
			&tripModel.ID,
			&tripModel.TripDate,
			&tripModel.Origin,
			&tripModel.Destination,
			&tripModel.FlightNumber,
			&tripModel.TravelerID,
			&tripModel.Status,
			&tripModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected trip repository getall error: %w", err)
		}
		tripModels = append(tripModels, tripModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected trip repository getall error: %w", err)
	}

	return ToDomainList(tripModels), nil
}
