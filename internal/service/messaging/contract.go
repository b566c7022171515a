//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=messaging_test
package messaging

import (
	"context"

	"ojitos/internal/entities"
	"ojitos/pkg/logger"
)

type Gateway interface {
	SendText(ctx context.Context, phone string, body string) (string, error)
}

type Repository interface {
	LogNotification(ctx context.Context, notification entities.NotificationLog) (*entities.NotificationLog, error)
	SaveInbound(ctx context.Context, message entities.InboundMessage) error
}

type CustomerReader interface {
	GetByID(ctx context.Context, id string) (*entities.Customer, error)
	GetByPhone(ctx context.Context, phone string) (*entities.Customer, error)
}

type PackageReader interface {
	GetByID(ctx context.Context, id string) (*entities.Package, error)
}

type (
	TemplateFn      func(pkg entities.Package) string
	TemplateFactory interface {
		GetTemplate(status entities.PackageStatus) (TemplateFn, error)
	}
)

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
