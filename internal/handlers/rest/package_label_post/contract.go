//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=package_label_post_test
package package_label_post

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
	Print(ctx context.Context, packageID string, format entities.LabelFormat) (*entities.RenderedLabel, error)
}
