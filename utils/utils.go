package utils

import "os"

func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// GetEnv returns the environment value for key, or fallback when unset.
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
