// Package sharecard serves social-media-friendly redirect pages for a daily
// devotion app. A share link like /share/15-08-2024-EN is rendered as a
// self-contained HTML page carrying Open Graph and Twitter Card tags pulled
// from the devotion content repository, plus an instant redirect into the
// app itself. Link-preview crawlers read the tags; browsers follow the
// redirect.
package sharecard

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
)

// App is the sharecard application. It wires together the slug parser,
// metadata fetcher, renderer, hit store, and admin surface on one Echo
// instance.
type App struct {
	Config Config
	Echo   *echo.Echo
	Store  *Store

	fetcher      *Fetcher
	renderer     *Renderer
	loginLimiter *loginLimiter
	card         []byte
	customRoutes []func(*App)
}

// New creates a sharecard App with the given configuration.
func New(cfg Config, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Start initializes the store, renderer, middleware, and routes, then serves
// until the listener closes.
func (a *App) Start() error {
	if err := a.init(); err != nil {
		return err
	}
	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// init builds everything Start needs short of listening. Split out so tests
// can drive the configured Echo instance directly.
func (a *App) init() error {
	cfg := a.Config

	if a.adminEnabled() {
		if cfg.SessionSecret == "" {
			return fmt.Errorf("sharecard: SessionSecret is required when AdminPassword is set")
		}
		if cfg.DatabasePath == "" {
			return fmt.Errorf("sharecard: DatabasePath is required when AdminPassword is set")
		}
	}

	if cfg.DatabasePath != "" {
		store, err := NewStore(cfg.DatabasePath)
		if err != nil {
			return fmt.Errorf("sharecard: init store: %w", err)
		}
		a.Store = store
	}

	if cfg.CardImagePath != "" {
		card, err := loadCardImage(cfg.CardImagePath)
		if err != nil {
			return fmt.Errorf("sharecard: %w", err)
		}
		a.card = card
	}

	a.fetcher = NewFetcher(cfg.DataBaseURL, cfg.FetchTimeout)
	a.renderer = &Renderer{
		SiteName:           cfg.SiteName,
		DefaultTitle:       cfg.DefaultTitle,
		DefaultDescription: cfg.DefaultDescription,
	}
	a.loginLimiter = newLoginLimiter(5, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.GET("/healthz", handleHealthz)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/", a.handleRoot)

	// /share without a slug still goes through the handler so the 400
	// fallback page applies; ?slug= is accepted for platform parity with
	// query-based routing.
	e.GET("/share", a.handleShare)
	e.GET("/share/", a.handleShare)
	e.GET("/share/:slug", a.handleShare)

	if a.card != nil {
		e.GET("/card.jpg", a.handleCard)
	}

	if a.adminEnabled() {
		e.GET("/admin/", a.handleAdmin)
		e.POST("/admin/login/", a.handleAdminLogin)
		e.POST("/admin/logout/", handleAdminLogout)
	}
}

func (a *App) adminEnabled() bool {
	return a.Config.AdminPassword != ""
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if
// empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally
// exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("sharecard: required environment variable %s is not set", key)
	}
	return v
}
