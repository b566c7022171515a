package payment

import (
	"strings"

	"github.com/google/uuid"
)

func isValidID(id string) bool {
	return uuid.Validate(strings.TrimSpace(id)) == nil
}
