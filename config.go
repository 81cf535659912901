package sharecard

import (
	"strings"
	"time"
)

// Config holds all configuration for a sharecard deployment.
type Config struct {
	SiteName           string // Site name used in og:site_name (default "Daily Devotion")
	DefaultTitle       string // Title used when upstream metadata is missing
	DefaultDescription string // Description used when upstream metadata is missing

	FallbackOrigin string        // Origin used when the request carries no Host header
	DataBaseURL    string        // Base URL of the devotion content repository
	FetchTimeout   time.Duration // Upper bound on a single metadata fetch (default 5s)

	Addr         string // Listen address (default ":3000")
	DatabasePath string // SQLite path for share-hit stats; empty disables recording

	CardImagePath string // Source image for the fallback social card; empty disables /card.jpg

	AdminPassword string // Admin login password; empty disables the stats dashboard
	SessionSecret string // Session encryption secret; required when AdminPassword is set
	CookieSecure  bool   // Set true for HTTPS
}

func (c *Config) setDefaults() {
	if c.SiteName == "" {
		c.SiteName = "Daily Devotion"
	}
	if c.DefaultTitle == "" {
		c.DefaultTitle = "Daily Devotion"
	}
	if c.DefaultDescription == "" {
		c.DefaultDescription = "Read today's devotion in English or Tamil."
	}
	if c.FallbackOrigin == "" {
		c.FallbackOrigin = "https://example.com"
	}
	if c.DataBaseURL == "" {
		c.DataBaseURL = "https://raw.githubusercontent.com/daily-devotion/content/main/data"
	}
	if c.FetchTimeout == 0 {
		c.FetchTimeout = 5 * time.Second
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	c.FallbackOrigin = strings.TrimSuffix(c.FallbackOrigin, "/")
	c.DataBaseURL = strings.TrimSuffix(c.DataBaseURL, "/")
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}
