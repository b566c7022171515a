package campaign

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"ojitos/internal/entities"
	"ojitos/pkg/logger"
)

const defaultConcurrency = 4

type Config struct {
	// Concurrency bounds the messages in flight while a campaign is sent.
	Concurrency int
}

type Campaign struct {
	repository  Repository
	customers   CustomerReader
	sender      Sender
	concurrency int
	log         serviceLogger
	now         func() time.Time
}

func New(cfg Config, repository Repository, customers CustomerReader, sender Sender, log serviceLogger) *Campaign {
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	return &Campaign{
		repository:  repository,
		customers:   customers,
		sender:      sender,
		concurrency: concurrency,
		log:         log.With(logger.NewField("component", "campaign")),
		now:         time.Now,
	}
}

func (c *Campaign) CreateCampaign(ctx context.Context, name, message string) (*entities.Campaign, error) {
	name = strings.TrimSpace(name)
	message = strings.TrimSpace(message)
	if name == "" || message == "" {
		return nil, ErrMissingRequiredFields
	}

	created, err := c.repository.Create(ctx, entities.Campaign{
		Name:    name,
		Message: message,
		Status:  entities.CampaignDraft,
	})
	if err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}
	return created, nil
}

func (c *Campaign) GetCampaigns(ctx context.Context) ([]entities.Campaign, error) {
	campaigns, err := c.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get campaigns: %w", err)
	}
	return campaigns, nil
}

// SendCampaign messages every customer that has a WhatsApp number and has
// not received this campaign yet. Individual failures are recorded per
// recipient and do not stop the campaign. When ctx ends mid-way the attempted
// recipients are still saved and the campaign is left partial, so a later
// send only reaches the rest.
func (c *Campaign) SendCampaign(ctx context.Context, id string) (*entities.CampaignResult, error) {
	if !isValidID(id) {
		return nil, ErrInvalidCampaignID
	}

	campaign, err := c.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}
	if campaign.Status == entities.CampaignSent {
		return nil, ErrCampaignAlreadySent
	}

	customers, err := c.customers.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get customers: %w", err)
	}

	alreadySent, err := c.repository.SentCustomerIDs(ctx, campaign.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign recipients: %w", err)
	}
	skip := make(map[string]struct{}, len(alreadySent))
	for _, customerID := range alreadySent {
		skip[customerID] = struct{}{}
	}

	audience := make([]entities.Customer, 0, len(customers))
	for _, customer := range customers {
		if strings.TrimSpace(customer.WhatsAppNumber) == "" {
			continue
		}
		if _, done := skip[customer.ID]; done {
			continue
		}
		audience = append(audience, customer)
	}

	recipients := make([]entities.CampaignRecipient, len(audience))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for i, customer := range audience {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			recipients[i] = c.sendOne(gctx, campaign, customer)
			return nil
		})
	}
	sendErr := g.Wait()

	attempted := make([]entities.CampaignRecipient, 0, len(recipients))
	result := &entities.CampaignResult{CampaignID: campaign.ID}
	for _, recipient := range recipients {
		if recipient.CampaignID == "" {
			continue
		}
		attempted = append(attempted, recipient)
		if recipient.Status == entities.NotificationSent {
			result.Sent++
		} else {
			result.Failed++
		}
	}

	// Messages already went out: record them even if the request is gone.
	saveCtx := context.WithoutCancel(ctx)
	if len(attempted) > 0 {
		if err := c.repository.SaveRecipients(saveCtx, attempted); err != nil {
			return nil, fmt.Errorf("save recipients: %w", err)
		}
	}

	if sendErr != nil {
		if len(attempted) > 0 {
			if err := c.repository.MarkPartial(saveCtx, campaign.ID); err != nil {
				return nil, fmt.Errorf("mark campaign partial: %w", err)
			}
		}
		c.log.Warn("campaign interrupted",
			logger.NewField("campaign_id", campaign.ID),
			logger.NewField("sent", result.Sent),
			logger.NewField("failed", result.Failed),
			logger.NewField("pending", len(audience)-len(attempted)),
			logger.NewField("error", sendErr),
		)
		return nil, fmt.Errorf("send campaign: %w", sendErr)
	}

	if err := c.repository.MarkSent(saveCtx, campaign.ID, c.now().UTC()); err != nil {
		return nil, fmt.Errorf("mark campaign sent: %w", err)
	}

	c.log.Info("campaign sent",
		logger.NewField("campaign_id", campaign.ID),
		logger.NewField("sent", result.Sent),
		logger.NewField("failed", result.Failed),
	)

	return result, nil
}

func (c *Campaign) sendOne(ctx context.Context, campaign *entities.Campaign, customer entities.Customer) entities.CampaignRecipient {
	recipient := entities.CampaignRecipient{
		CampaignID: campaign.ID,
		CustomerID: customer.ID,
		Phone:      customer.WhatsAppNumber,
		Status:     entities.NotificationSent,
	}

	notification, err := c.sender.SendText(ctx, entities.OutboundMessage{
		CustomerID: &customer.ID,
		Phone:      customer.WhatsAppNumber,
		Body:       campaign.Message,
	})
	if notification != nil {
		recipient.Phone = notification.Phone
	}
	if err != nil {
		recipient.Status = entities.NotificationFailed
		recipient.Error = err.Error()
		c.log.Warn("campaign message failed",
			logger.NewField("campaign_id", campaign.ID),
			logger.NewField("customer_id", customer.ID),
			logger.NewField("error", err),
		)
	}
	return recipient
}
