package validators

import "strings"

// MaxQueryLen caps free-text search input.
const MaxQueryLen = 200

func SanitizeString(input string, maxLen int) string {
	trimmed := strings.TrimSpace(input)
	if maxLen > 0 && len(trimmed) > maxLen {
		return strings.ToValidUTF8(trimmed[:maxLen], "")
	}
	return trimmed
}
