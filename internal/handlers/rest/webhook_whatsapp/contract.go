//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=webhook_whatsapp_test
package webhook_whatsapp

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
	VerifyWebhook(mode, token, challenge string) (string, error)
	HandleInbound(ctx context.Context, messages []entities.InboundMessage) error
}
