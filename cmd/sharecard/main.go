package main

import (
	"log"
	"strings"
	"time"

	"github.com/daily-devotion/sharecard"
)

func main() {
	cfg := sharecard.Config{
		SiteName:           sharecard.EnvOr("SITE_NAME", "Daily Devotion"),
		DefaultTitle:       sharecard.EnvOr("DEFAULT_TITLE", ""),
		DefaultDescription: sharecard.EnvOr("DEFAULT_DESCRIPTION", ""),

		FallbackOrigin: sharecard.EnvOr("FALLBACK_ORIGIN", ""),
		DataBaseURL:    sharecard.EnvOr("DATA_BASE_URL", ""),
		FetchTimeout:   envDuration("FETCH_TIMEOUT"),

		Addr:         sharecard.EnvOr("ADDR", ":3000"),
		DatabasePath: sharecard.EnvOr("DATABASE_PATH", "data/sharecard.db"),

		CardImagePath: sharecard.EnvOr("CARD_IMAGE_PATH", ""),

		AdminPassword: sharecard.EnvOr("ADMIN_PASSWORD", ""),
		SessionSecret: sharecard.EnvOr("ADMIN_SESSION_SECRET", ""),
		CookieSecure:  strings.EqualFold(sharecard.EnvOr("COOKIE_SECURE", ""), "true"),
	}

	app := sharecard.New(cfg)
	defer app.Close()

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}

// envDuration parses key as a time.Duration, returning zero (use the
// default) when unset or malformed.
func envDuration(key string) time.Duration {
	v := sharecard.EnvOr(key, "")
	if v == "" {
		return 0
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("sharecard: ignoring invalid %s %q: %v", key, v, err)
		return 0
	}
	return d
}
