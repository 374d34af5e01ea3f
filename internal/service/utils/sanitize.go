package utils

import "github.com/microcosm-cc/bluemonday"

var contentPolicy = bluemonday.StrictPolicy()

// SanitizeContent strips all HTML from user-submitted text. Content is stored
// and served as plain text; placeholder substitution for soft-deleted rows
// happens on read and must not be confusable with markup.
func SanitizeContent(s string) string {
	return contentPolicy.Sanitize(s)
}
