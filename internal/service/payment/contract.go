//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_test
package payment

import (
	"context"

	"ojitos/internal/entities"
	"ojitos/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, payments []entities.CustomerPayment) ([]entities.CustomerPayment, error)
	DeleteByIDs(ctx context.Context, ids []string) error
	ListByPackage(ctx context.Context, packageID string) ([]entities.CustomerPayment, error)
	ListByPackageIDs(ctx context.Context, packageIDs []string) ([]entities.CustomerPayment, error)
	DeliverWithPayment(ctx context.Context, packageID string, deliveredBy string, payments []entities.CustomerPayment) error
	ListDebtSources(ctx context.Context) ([]entities.DebtSource, error)
	UpsertDebts(ctx context.Context, debts []entities.PackageDebt) (int64, error)
}

type PackageRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Package, error)
	SetDeliveryState(ctx context.Context, id string, state entities.DeliveryState) error
}

type EventPublisher interface {
	PublishStatusChanged(ctx context.Context, events ...entities.PackageStatusEvent) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
