package customer

import (
	"net/mail"
	"strings"

	"github.com/google/uuid"
)

const minPhoneDigits = 7

func isValidID(id string) bool {
	return uuid.Validate(strings.TrimSpace(id)) == nil
}

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

// isValidPhone expects an already normalized, digits-only number.
func isValidPhone(phone string) bool {
	return len(phone) >= minPhoneDigits
}

func isValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}
