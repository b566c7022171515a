//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatches_get_test
package dispatches_get

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
	GetDispatches(ctx context.Context) ([]entities.DispatchRelation, error)
}
