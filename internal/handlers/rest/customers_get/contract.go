//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=customers_get_test
package customers_get

import (
	"context"

	"ojitos/internal/entities"
	"ojitos/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetCustomers(ctx context.Context) ([]entities.Customer, error)
}
