//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=packages_deleted_get_test
package packages_deleted_get

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
	GetDeletedPackages(ctx context.Context) ([]entities.Package, error)
}
