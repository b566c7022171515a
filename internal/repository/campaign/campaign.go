package campaign

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"ojitos/internal/entities"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const campaignColumns = "id, name, message, status, created_at, sent_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, campaign entities.Campaign) (*entities.Campaign, error) {
	query := `INSERT INTO marketing_campaigns (name, message, status)
		VALUES ($1, $2, $3)
		RETURNING ` + campaignColumns

	created, err := scanCampaign(r.querier.QueryRow(ctx, query, campaign.Name, campaign.Message, string(campaign.Status)))
	if err != nil {
		return nil, fmt.Errorf("unexpected campaign repository create error: %w", err)
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Campaign, error) {
	query := `SELECT ` + campaignColumns + `
		FROM marketing_campaigns
		WHERE id = $1`

	campaign, err := scanCampaign(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrCampaignNotFound
		}
		return nil, fmt.Errorf("unexpected campaign repository getbyid error: %w", err)
	}
	return campaign, nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Campaign, error) {
	query := `
	SELECT ` + campaignColumns + `
	FROM marketing_campaigns
	ORDER BY created_at DESC`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected campaign repository getall error: %w", err)
	}
	defer rows.Close()

	campaigns := make([]entities.Campaign, 0, 8)
	for rows.Next() {
		campaign, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected campaign repository getall error: %w", err)
		}
		campaigns = append(campaigns, *campaign)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected campaign repository getall error: %w", err)
	}
	return campaigns, nil
}

// SaveRecipients records the per-recipient outcome. A resend overwrites the
// previous outcome of the same customer.
func (r *Repository) SaveRecipients(ctx context.Context, recipients []entities.CampaignRecipient) error {
	if len(recipients) == 0 {
		return nil
	}

	builder := qb.
		Insert("marketing_campaign_recipients").
		Columns("campaign_id", "customer_id", "phone", "status", "error")
	for _, recipient := range recipients {
		builder = builder.Values(
			recipient.CampaignID,
			recipient.CustomerID,
			recipient.Phone,
			string(recipient.Status),
			recipient.Error,
		)
	}

	query, args, err := builder.
		Suffix(`ON CONFLICT (campaign_id, customer_id) DO UPDATE
			SET phone = EXCLUDED.phone, status = EXCLUDED.status, error = EXCLUDED.error`).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected campaign repository saverecipients error: %w", err)
	}

	_, err = r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected campaign repository saverecipients error: %w", err)
	}
	return nil
}

// SentCustomerIDs lists the customers that already received the campaign.
func (r *Repository) SentCustomerIDs(ctx context.Context, campaignID string) ([]string, error) {
	rows, err := r.querier.Query(ctx,
		`SELECT customer_id FROM marketing_campaign_recipients WHERE campaign_id = $1 AND status = $2`,
		campaignID, string(entities.NotificationSent),
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected campaign repository sentcustomerids error: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0, 16)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("unexpected campaign repository sentcustomerids error: %w", err)
		}
		ids = append(ids, id)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected campaign repository sentcustomerids error: %w", err)
	}
	return ids, nil
}

func (r *Repository) MarkPartial(ctx context.Context, id string) error {
	tag, err := r.querier.Exec(ctx,
		`UPDATE marketing_campaigns SET status = $2 WHERE id = $1`,
		id, string(entities.CampaignPartial),
	)
	if err != nil {
		return fmt.Errorf("unexpected campaign repository markpartial error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrCampaignNotFound
	}
	return nil
}

func (r *Repository) MarkSent(ctx context.Context, id string, sentAt time.Time) error {
	tag, err := r.querier.Exec(ctx,
		`UPDATE marketing_campaigns SET status = $2, sent_at = $3 WHERE id = $1`,
		id, string(entities.CampaignSent), sentAt,
	)
	if err != nil {
		return fmt.Errorf("unexpected campaign repository marksent error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrCampaignNotFound
	}
	return nil
}

func scanCampaign(row pgx.Row) (*entities.Campaign, error) {
	var (
		campaign entities.Campaign
		status   string
	)
	err := row.Scan(
		&campaign.ID,
		&campaign.Name,
		&campaign.Message,
		&status,
		&campaign.CreatedAt,
		&campaign.SentAt,
	)
	if err != nil {
		return nil, err
	}
	campaign.Status = entities.CampaignStatus(status)
	return &campaign, nil
}
