//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=message_post_test
package message_post

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
	SendText(ctx context.Context, message entities.OutboundMessage) (*entities.NotificationLog, error)
}
