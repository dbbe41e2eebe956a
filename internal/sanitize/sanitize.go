// Package sanitize removes HTML-like markup from free-text input before it
// is persisted. Stored values may later be rendered by a consuming view, so
// tags are stripped once, at the write boundary.
package sanitize

import "strings"

// Strip removes every <...> tag span from s. An unterminated tag swallows
// the rest of the string. Stripping is idempotent: the output contains no
// '<', so a second pass returns it unchanged.
func Strip(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	inTag := false
	for _, r := range s {
		switch {
		case inTag:
			if r == '>' {
				inTag = false
			}
		case r == '<':
			inTag = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Field trims surrounding whitespace and strips markup. This is the
// canonical cleanup applied to every free-text field accepted from a client.
func Field(s string) string {
	return Strip(strings.TrimSpace(s))
}
