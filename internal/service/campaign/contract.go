//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=campaign_test
package campaign

import (
	"context"
	"time"

	"ojitos/internal/entities"
	"ojitos/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, campaign entities.Campaign) (*entities.Campaign, error)
	GetByID(ctx context.Context, id string) (*entities.Campaign, error)
	GetAll(ctx context.Context) ([]entities.Campaign, error)
	SentCustomerIDs(ctx context.Context, campaignID string) ([]string, error)
	SaveRecipients(ctx context.Context, recipients []entities.CampaignRecipient) error
	MarkPartial(ctx context.Context, id string) error
	MarkSent(ctx context.Context, id string, sentAt time.Time) error
}

type CustomerReader interface {
	GetAll(ctx context.Context) ([]entities.Customer, error)
}

type Sender interface {
	SendText(ctx context.Context, message entities.OutboundMessage) (*entities.NotificationLog, error)
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
