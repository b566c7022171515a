//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_test
package dispatch

import (
	"context"

	"ojitos/internal/entities"
	"ojitos/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, relation entities.DispatchRelation) (*entities.DispatchRelation, error)
	Delete(ctx context.Context, id string) error
	AddPackages(ctx context.Context, dispatchID string, packageIDs []string) error
	RemovePackages(ctx context.Context, dispatchID string) error
	GetByID(ctx context.Context, id string) (*entities.DispatchRelation, error)
	GetAll(ctx context.Context) ([]entities.DispatchRelation, error)
	CountByPackage(ctx context.Context, packageID string) (int, error)
}

type PackageRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Package, error)
	GetAll(ctx context.Context, filter entities.PackageFilter) ([]entities.Package, error)
	ListByIDs(ctx context.Context, ids []string) ([]entities.Package, error)
	ListByDispatch(ctx context.Context, dispatchID string) ([]entities.Package, error)
	UpdateStatuses(ctx context.Context, ids []string, status entities.PackageStatus) error
}

type TrackingRepository interface {
	Create(ctx context.Context, events []entities.TrackingEvent) error
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
