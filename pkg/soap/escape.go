package soap

import "strings"

// EscapeXML escapes the five reserved XML characters in s.
// Apply exactly once per value: escaping is not idempotent, so values
// already containing entities will be double-escaped.
func EscapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}
