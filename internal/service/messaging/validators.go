package messaging

import "unicode/utf8"

const (
	minPhoneDigits = 7
	// maxBodyRunes is the WhatsApp Cloud API limit for text messages.
	maxBodyRunes = 4096
)

func isValidPhone(phone string) bool {
	return len(phone) >= minPhoneDigits
}

func isValidBody(body string) bool {
	return utf8.RuneCountInString(body) <= maxBodyRunes
}
