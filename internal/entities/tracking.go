package entities

import "time"

type TrackingEventType string

const (
	EventCreated       TrackingEventType = "created"
	EventStatusChanged TrackingEventType = "status_changed"
	EventDispatched    TrackingEventType = "dispatched"
	EventDelivered     TrackingEventType = "delivered"
	EventLabelPrinted  TrackingEventType = "label_printed"
)

func (t TrackingEventType) String() string {
	return string(t)
}

type TrackingEvent struct {
	ID          string
	PackageID   string
	EventType   TrackingEventType
	Description string
	Location    string
	CreatedAt   time.Time
}
