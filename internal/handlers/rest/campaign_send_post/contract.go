//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=campaign_send_post_test
package campaign_send_post

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
	SendCampaign(ctx context.Context, id string) (*entities.CampaignResult, error)
}
