package notification

import (
	"context"
	"fmt"

	"ojitos/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) LogNotification(
	ctx context.Context,
	notification entities.NotificationLog,
) (*entities.NotificationLog, error) {
	query := `INSERT INTO notification_log (customer_id, phone, message, status, provider_message_id, error)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, customer_id, phone, message, status, provider_message_id, error, created_at`

	var (
		created entities.NotificationLog
		status  string
	)
	err := r.querier.QueryRow(
		ctx,
		query,
		notification.CustomerID,
		notification.Phone,
		notification.Message,
		string(notification.Status),
		notification.ProviderMessageID,
		notification.Error,
	).Scan(
		&created.ID,
		&created.CustomerID,
		&created.Phone,
		&created.Message,
		&status,
		&created.ProviderMessageID,
		&created.Error,
		&created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository log error: %w", err)
	}
	created.Status = entities.NotificationStatus(status)

	return &created, nil
}

// SaveInbound stores a webhook message. Redeliveries of the same provider
// message are ignored.
func (r *Repository) SaveInbound(ctx context.Context, message entities.InboundMessage) error {
	query := `INSERT INTO whatsapp_messages (customer_id, from_phone, body, provider_message_id, received_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (provider_message_id) DO NOTHING`

	_, err := r.querier.Exec(
		ctx,
		query,
		message.CustomerID,
		message.From,
		message.Body,
		message.ProviderMessageID,
		message.ReceivedAt,
	)
	if err != nil {
		return fmt.Errorf("unexpected notification repository saveinbound error: %w", err)
	}
	return nil
}
