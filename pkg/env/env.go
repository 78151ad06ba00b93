package env

import "os"

// Get returns the value of key, or fallback when it is unset or empty.
func Get(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// First returns the first non-empty value among keys.
func First(keys ...string) (string, bool) {
	for _, key := range keys {
		if val := os.Getenv(key); val != "" {
			return val, true
		}
	}
	return "", false
}
