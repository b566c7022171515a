package trip

import (
	"strings"

	"github.com/google/uuid"
	"ojitos/internal/entities"
)

func isValidID(id string) bool {
	return uuid.Validate(strings.TrimSpace(id)) == nil
}

func isValidStatus(status entities.TripStatus) bool {
	switch status {
	case entities.TripScheduled, entities.TripInProgress, entities.TripCompleted:
		return true
	default:
		return false
	}
}

func normalizeFlightNumber(flight string) string {
	return strings.ToUpper(strings.Join(strings.Fields(flight), ""))
}
