// Package htmlesc is the single escaping routine for user-supplied text in
// generated markup. Every renderer routes text fields through here.
package htmlesc

import (
	"html"
	"strings"
)

// Escape escapes text for element content.
func Escape(s string) string {
	return html.EscapeString(s)
}

// EscapeAttr escapes text for attribute values; newlines are flattened so a
// multi-line field cannot break out of the attribute.
func EscapeAttr(s string) string {
	return html.EscapeString(strings.ReplaceAll(s, "\n", " "))
}
