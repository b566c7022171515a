package package_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"ojitos/internal/pkg/kafka"
	"ojitos/internal/service/messaging"
	"ojitos/pkg/logger"
)

type Handler struct {
	messagingService         Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, messagingService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		messagingService:         messagingService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("package.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("package.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing handles one message. It returns true when the session
// context is gone and the message must be left uncommitted.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event kafka.StatusChangedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("package.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("package", event.PackageID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("package.status.changed processing")

	notification, err := h.messagingService.NotifyStatusChange(ctx, event.ToDomain())
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("package.status.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, messaging.ErrStatusMismatch):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("package.status.changed handler stale event")

		case errors.Is(err, messaging.ErrMissingRecipient), errors.Is(err, messaging.ErrInvalidPhone):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("package.status.changed handler customer has no usable phone")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("package.status.changed handler failed to notify customer")
		}
		sess.MarkMessage(message, "")
		return false
	}

	if notification == nil {
		msgLog.Info("package.status.changed: no message for status")
	} else {
		msgLog.With(
			logger.NewField("notification", notification.ID),
			logger.NewField("notification_status", notification.Status),
		).Info("package.status.changed: processed")
	}

	sess.MarkMessage(message, "")
	return false
}
