package views

// SiteConfig carries site-wide settings into the admin templates.
type SiteConfig struct {
	Name string
}

// SlugStats is one row of the share-hit dashboard.
type SlugStats struct {
	Slug     string
	Language string
	Hits     int64
	LastHit  string // UTC, "2006-01-02 15:04:05"
}
