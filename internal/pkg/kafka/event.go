package kafka

import (
	"time"

	"ojitos/internal/entities"
)

// StatusChangedEvent is the JSON value of a package.status.changed message.
// The key is the package id so one package's events stay ordered.
type StatusChangedEvent struct {
	PackageID      string    `json:"package_id"`
	TrackingNumber string    `json:"tracking_number"`
	CustomerID     string    `json:"customer_id"`
	Status         string    `json:"status"`
	OccurredAt     time.Time `json:"occurred_at"`
}

func FromDomainEvent(e entities.PackageStatusEvent) StatusChangedEvent {
	return StatusChangedEvent{
		PackageID:      e.PackageID,
		TrackingNumber: e.TrackingNumber,
		CustomerID:     e.CustomerID,
		Status:         e.Status.String(),
		OccurredAt:     e.OccurredAt,
	}
}

func (e StatusChangedEvent) ToDomain() entities.PackageStatusEvent {
	return entities.PackageStatusEvent{
		PackageID:      e.PackageID,
		TrackingNumber: e.TrackingNumber,
		CustomerID:     e.CustomerID,
		Status:         entities.PackageStatus(e.Status),
		OccurredAt:     e.OccurredAt,
	}
}
