package campaign

import "errors"

var (
	ErrMissingRequiredFields = errors.New("campaign name and message are required")
	ErrInvalidCampaignID     = errors.New("invalid campaign id")
	ErrCampaignAlreadySent   = errors.New("campaign already sent")
)
