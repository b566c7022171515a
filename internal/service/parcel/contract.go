//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_test
package parcel

import (
	"context"

	"ojitos/internal/entities"
	"ojitos/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, packageModify entities.PackageModify) (*entities.Package, error)
	GetByID(ctx context.Context, id string) (*entities.Package, error)
	GetAll(ctx context.Context, filter entities.PackageFilter) ([]entities.Package, error)
	UpdateStatus(ctx context.Context, id string, status entities.PackageStatus) error
	SoftDelete(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error
	ListDeleted(ctx context.Context) ([]entities.Package, error)
	GetFreightRate(ctx context.Context, origin string, destination string) (*entities.RouteFreightRate, error)
}

type TrackingRepository interface {
	Create(ctx context.Context, events []entities.TrackingEvent) error
}

type PaymentReader interface {
	ListByPackage(ctx context.Context, packageID string) ([]entities.CustomerPayment, error)
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
