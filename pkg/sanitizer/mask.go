package sanitizer

import (
	"strings"
	"unicode/utf8"
)

// MaskEmail keeps the first character of the local part and the domain.
// Values without exactly one '@' are masked as plain strings.
func MaskEmail(email string) string {
	local, domain, ok := strings.Cut(email, "@")
	if !ok || local == "" || strings.Contains(domain, "@") {
		return MaskString(email, 1)
	}

	first, size := utf8.DecodeRuneInString(local)
	return string(first) + strings.Repeat("*", utf8.RuneCountInString(local[size:])) + "@" + domain
}

// MaskString keeps visibleChars runes at both ends and masks the middle.
// Strings too short to keep anything are masked entirely.
func MaskString(s string, visibleChars int) string {
	if visibleChars < 0 {
		visibleChars = 0
	}

	runes := []rune(s)
	n := len(runes)
	if n <= visibleChars*2 {
		return strings.Repeat("*", n)
	}

	return string(runes[:visibleChars]) + strings.Repeat("*", n-visibleChars*2) + string(runes[n-visibleChars:])
}

// Redact replaces a secret with a fixed-width mask so its length is not
// disclosed. Empty input stays empty.
func Redact(s string) string {
	if s == "" {
		return ""
	}
	return "********"
}
