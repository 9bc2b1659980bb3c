// Package format holds the pure text helpers used when displaying memos.
package format

import (
	"strings"
	"time"
)

const (
	// TimestampLayout renders as YYYY-MM-DD HH:MM.
	TimestampLayout = "2006-01-02 15:04"

	// PreviewLimit is the number of characters shown in a list preview.
	PreviewLimit = 100
	ellipsis     = "..."
)

// Replacement is a single pass, so produced entities are never escaped again.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML neutralises markup in untrusted text before it is written into a page.
func EscapeHTML(text string) string {
	return htmlEscaper.Replace(text)
}

// FormatTimestamp formats t in its own location as YYYY-MM-DD HH:MM.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// Preview returns content cut to PreviewLimit characters followed by "...",
// or content unchanged when it already fits.
func Preview(content string) string {
	runes := []rune(content)
	if len(runes) <= PreviewLimit {
		return content
	}
	return string(runes[:PreviewLimit]) + ellipsis
}
