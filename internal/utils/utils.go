package utils

import "os"

// Truncate clips s to at most n runes. Diagnostic payloads embed error text
// and must stay short enough to scan at a glance.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// EnvSet reports whether the environment variable is present and non-empty.
func EnvSet(key string) bool {
	return os.Getenv(key) != ""
}
