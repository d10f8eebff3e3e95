// Package util provides shared utility functions for the connector.
package util

// MaxLogBodySize is the default maximum body size kept in request logs (10KB).
const MaxLogBodySize = 10 * 1024

// Truncate shortens a string to maxSize bytes, appending "...(truncated)"
// when content was cut. If maxSize <= 0, MaxLogBodySize is used.
func Truncate(data string, maxSize int) string {
	if maxSize <= 0 {
		maxSize = MaxLogBodySize
	}
	if len(data) > maxSize {
		return data[:maxSize] + "...(truncated)"
	}
	return data
}
