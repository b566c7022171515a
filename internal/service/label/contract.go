//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=label_test
package label

import (
	"context"

	"ojitos/internal/entities"
	"ojitos/pkg/logger"
)

type PackageRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Package, error)
	UpdateStatusFrom(ctx context.Context, id string, from, status entities.PackageStatus) (bool, error)
}

type Repository interface {
	Create(ctx context.Context, label entities.PackageLabel) (*entities.PackageLabel, error)
}

type TrackingRepository interface {
	Create(ctx context.Context, events []entities.TrackingEvent) error
}

type ObjectStorage interface {
	Enabled() bool
	Upload(ctx context.Context, key string, body []byte, contentType string) (string, error)
}

type EventPublisher interface {
	PublishStatusChanged(ctx context.Context, events ...entities.PackageStatusEvent) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
