package sanitizer

// MaxLength truncates s to at most maxLen runes.
func MaxLength(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	count := 0
	for i := range s {
		if count == maxLen {
			return s[:i]
		}
		count++
	}
	return s
}

// Limit returns a transform that truncates to maxLen runes, for use with
// Apply and Compose.
func Limit(maxLen int) func(string) string {
	return func(s string) string {
		return MaxLength(s, maxLen)
	}
}
