package entities

import "time"

type NotificationStatus string

const (
	NotificationSent   NotificationStatus = "sent"
	NotificationFailed NotificationStatus = "failed"
)

type NotificationLog struct {
	ID                string
	CustomerID        *string
	Phone             string
	Message           string
	Status            NotificationStatus
	ProviderMessageID string
	Error             string
	CreatedAt         time.Time
}

type OutboundMessage struct {
	CustomerID *string
	Phone      string
	Body       string
}

type InboundMessage struct {
	ID                string
	CustomerID        *string
	From              string
	Body              string
	ProviderMessageID string
	ReceivedAt        time.Time
}

// PackageStatusEvent is published on the bus whenever a package changes
// status.
type PackageStatusEvent struct {
	PackageID      string
	TrackingNumber string
	CustomerID     string
	Status         PackageStatus
	OccurredAt     time.Time
}
