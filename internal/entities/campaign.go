package entities

import "time"

type CampaignStatus string

const (
	CampaignDraft   CampaignStatus = "draft"
	CampaignPartial CampaignStatus = "partial"
	CampaignSent    CampaignStatus = "sent"
)

type Campaign struct {
	ID        string
	Name      string
	Message   string
	Status    CampaignStatus
	CreatedAt time.Time
	SentAt    *time.Time
}

type CampaignRecipient struct {
	CampaignID string
	CustomerID string
	Phone      string
	Status     NotificationStatus
	Error      string
}

type CampaignResult struct {
	CampaignID string
	Sent       int
	Failed     int
}
