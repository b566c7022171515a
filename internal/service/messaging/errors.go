package messaging

import "errors"

var (
	ErrMissingRecipient    = errors.New("customer id or phone is required")
	ErrInvalidPhone        = errors.New("invalid phone")
	ErrEmptyMessage        = errors.New("message body is empty")
	ErrMessageTooLong      = errors.New("message body is too long")
	ErrSendFailed          = errors.New("whatsapp send failed")
	ErrWebhookVerification = errors.New("webhook verification failed")
	ErrUndefinedStatus     = errors.New("no notification for package status")
	ErrStatusMismatch      = errors.New("package status changed since the event")
)
