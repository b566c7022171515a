//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=package_status_changed_test
package package_status_changed

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
	NotifyStatusChange(ctx context.Context, event entities.PackageStatusEvent) (*entities.NotificationLog, error)
}
