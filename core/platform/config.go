package platform

import (
	"fmt"
	"strings"
)

// Config holds the connection settings for the hosted platform.
type Config struct {
	// URL is the project endpoint, e.g. https://xyz.supabase.co.
	URL string `mapstructure:"url" default:""`
	// ServiceKey is the privileged key used for provisioning calls.
	ServiceKey string `mapstructure:"service_key" default:""`
	// AnonKey is the public anonymous key.
	AnonKey string `mapstructure:"anon_key" default:""`
	// TimeoutSeconds bounds every HTTP call made against the platform.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Validate reports every required setting that is empty.
func (c Config) Validate() error {
	var missing []string
	if c.URL == "" {
		missing = append(missing, "SUPABASE_URL")
	}
	if c.ServiceKey == "" {
		missing = append(missing, "SUPABASE_SERVICE_KEY")
	}
	if c.AnonKey == "" {
		missing = append(missing, "SUPABASE_ANON_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}
