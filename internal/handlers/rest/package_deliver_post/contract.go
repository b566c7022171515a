//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=package_deliver_post_test
package package_deliver_post

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
	DeliverWithPayment(ctx context.Context, packageID string, deliveredBy string, payments []entities.CustomerPayment) (*entities.PackageDetails, error)
}
