package parcel

import (
	"strings"

	"github.com/google/uuid"
)

func isValidID(id string) bool {
	return uuid.Validate(strings.TrimSpace(id)) == nil
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
