package util

import "os"

// EnvOrDefault returns the value of the named environment variable, falling
// back when it is unset or empty.
func EnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
