//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_post_test
package dispatch_post

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
	CreateDispatch(ctx context.Context, create entities.DispatchCreate) (*entities.DispatchDetails, error)
}
