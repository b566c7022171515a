// Package phone normalizes customer phone numbers for the WhatsApp API.
package phone

import "strings"

const (
	colombiaPrefix       = "57"
	nationalNumberDigits = 10
)

// Normalize strips every non-digit and prefixes the Colombian country code to
// 10-digit national numbers. Numbers of any other length are returned as
// digits only.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw) + len(colombiaPrefix))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	digits := b.String()
	if len(digits) == nationalNumberDigits {
		return colombiaPrefix + digits
	}
	return digits
}
