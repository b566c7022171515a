//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=trip_test
package trip

import (
	"context"

	"ojitos/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, tripModify entities.TripModify) (string, error)
	GetAll(ctx context.Context) ([]entities.Trip, error)
}
