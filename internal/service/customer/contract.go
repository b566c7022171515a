//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=customer_test
package customer

import (
	"context"

	"ojitos/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, customerModify entities.CustomerModify) (string, error)
	GetByID(ctx context.Context, id string) (*entities.Customer, error)
	GetAll(ctx context.Context) ([]entities.Customer, error)
	Update(ctx context.Context, customerModify entities.CustomerModify) (*entities.Customer, error)
	CountPackages(ctx context.Context, customerID string) (int64, error)
}

type PackageReader interface {
	ListByCustomer(ctx context.Context, customerID string) ([]entities.Package, error)
}

type PaymentReader interface {
	ListByPackageIDs(ctx context.Context, packageIDs []string) ([]entities.CustomerPayment, error)
}
