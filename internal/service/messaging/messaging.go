package messaging

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ojitos/internal/entities"
	"ojitos/internal/pkg/phone"
	"ojitos/pkg/logger"
)

const subscribeMode = "subscribe"

type Config struct {
	VerifyToken string
}

type Messaging struct {
	gateway     Gateway
	repository  Repository
	customers   CustomerReader
	packages    PackageReader
	templates   TemplateFactory
	verifyToken string
	log         serviceLogger
	now         func() time.Time
}

func New(
	cfg Config,
	gateway Gateway,
	repository Repository,
	customers CustomerReader,
	packages PackageReader,
	templates TemplateFactory,
	log serviceLogger,
) *Messaging {
	return &Messaging{
		gateway:     gateway,
		repository:  repository,
		customers:   customers,
		packages:    packages,
		templates:   templates,
		verifyToken: cfg.VerifyToken,
		log:         log.With(logger.NewField("component", "messaging")),
		now:         time.Now,
	}
}

// SendText delivers a text message and records the attempt in the
// notification log. An explicit phone is used as given; otherwise the
// customer's contact number is looked up.
func (m *Messaging) SendText(ctx context.Context, message entities.OutboundMessage) (*entities.NotificationLog, error) {
	body := strings.TrimSpace(message.Body)
	if body == "" {
		return nil, ErrEmptyMessage
	}
	if !isValidBody(body) {
		return nil, ErrMessageTooLong
	}

	to, err := m.resolvePhone(ctx, message)
	if err != nil {
		return nil, err
	}

	notification := entities.NotificationLog{
		CustomerID: message.CustomerID,
		Phone:      to,
		Message:    body,
		Status:     entities.NotificationSent,
	}

	providerID, sendErr := m.gateway.SendText(ctx, to, body)
	if sendErr != nil {
		notification.Status = entities.NotificationFailed
		notification.Error = sendErr.Error()
	} else {
		notification.ProviderMessageID = providerID
	}

	stored, err := m.repository.LogNotification(ctx, notification)
	if err != nil {
		m.log.Warn("notification log write failed",
			logger.NewField("phone", to),
			logger.NewField("error", err),
		)
		notification.CreatedAt = m.now().UTC()
		stored = &notification
	}

	if sendErr != nil {
		return stored, fmt.Errorf("%w: %w", ErrSendFailed, sendErr)
	}
	return stored, nil
}

func (m *Messaging) resolvePhone(ctx context.Context, message entities.OutboundMessage) (string, error) {
	raw := message.Phone
	if strings.TrimSpace(raw) == "" && message.CustomerID != nil {
		customer, err := m.customers.GetByID(ctx, *message.CustomerID)
		if err != nil {
			return "", fmt.Errorf("failed to get customer: %w", err)
		}
		raw = customer.ContactPhone()
	}
	if strings.TrimSpace(raw) == "" {
		return "", ErrMissingRecipient
	}

	normalized := phone.Normalize(raw)
	if !isValidPhone(normalized) {
		return "", ErrInvalidPhone
	}
	return normalized, nil
}

// VerifyWebhook answers the subscription handshake of the WhatsApp webhook.
func (m *Messaging) VerifyWebhook(mode, token, challenge string) (string, error) {
	if mode != subscribeMode || m.verifyToken == "" || token != m.verifyToken {
		return "", ErrWebhookVerification
	}
	return challenge, nil
}

// HandleInbound stores incoming messages, linked to the customer whose phone
// matches the sender when there is one.
func (m *Messaging) HandleInbound(ctx context.Context, messages []entities.InboundMessage) error {
	for _, message := range messages {
		message.From = phone.Normalize(message.From)
		if message.ReceivedAt.IsZero() {
			message.ReceivedAt = m.now().UTC()
		}

		customer, err := m.customers.GetByPhone(ctx, message.From)
		switch {
		case err == nil:
			message.CustomerID = &customer.ID
		case errors.Is(err, entities.ErrCustomerNotFound):
			m.log.Info("inbound message from unknown number", logger.NewField("from", message.From))
		default:
			return fmt.Errorf("failed to find customer: %w", err)
		}

		if err := m.repository.SaveInbound(ctx, message); err != nil {
			return fmt.Errorf("save inbound message: %w", err)
		}
	}
	return nil
}

// NotifyStatusChange tells the customer about a package status change. Stale
// events and statuses without a message are skipped.
func (m *Messaging) NotifyStatusChange(ctx context.Context, event entities.PackageStatusEvent) (*entities.NotificationLog, error) {
	if event.PackageID == "" || event.Status == "" {
		return nil, fmt.Errorf("package id and status are required")
	}

	pkg, err := m.packages.GetByID(ctx, event.PackageID)
	if err != nil {
		return nil, fmt.Errorf("failed to get package: %w", err)
	}
	if pkg.Status != event.Status {
		return nil, fmt.Errorf("%w: event %s, package %s", ErrStatusMismatch, event.Status, pkg.Status)
	}

	template, err := m.templates.GetTemplate(pkg.Status)
	if err != nil {
		if errors.Is(err, ErrUndefinedStatus) {
			return nil, nil
		}
		return nil, err
	}

	return m.SendText(ctx, entities.OutboundMessage{
		CustomerID: &pkg.CustomerID,
		Body:       template(*pkg),
	})
}
