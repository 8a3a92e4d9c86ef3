package util

import "strings"

// Slug converts a category label into the file-name stem its page renders
// under: lowercased, spaces become underscores, anything outside
// [a-z0-9_-] is dropped. Slug("Base CSS") == "base_css".
func Slug(label string) string {
	lower := strings.ToLower(strings.TrimSpace(label))
	var b strings.Builder
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}
	return b.String()
}
