package instance

import (
	"os"

	"github.com/booknest/storefront/pkg/env"
)

// GetID names this process in logs: BOOKNEST_INSTANCE_ID, then the Heroku
// DYNO, then the hostname.
func GetID() string {
	if id, ok := env.First("BOOKNEST_INSTANCE_ID", "DYNO"); ok {
		return id
	}
	if host, err := os.Hostname(); err == nil && host != "" {
		return host
	}
	return "local"
}
