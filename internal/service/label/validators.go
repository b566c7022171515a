package label

import (
	"strings"

	"github.com/google/uuid"
	"ojitos/internal/entities"
)

func isValidID(id string) bool {
	return uuid.Validate(strings.TrimSpace(id)) == nil
}

func isValidFormat(format entities.LabelFormat) bool {
	return format == entities.LabelPDF || format == entities.LabelCPCL
}
