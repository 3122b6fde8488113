// Package docsite serves a documentation website: a landing page, a tree
// of Markdown docs, sitemap and robots, built with Go, Echo, and templ.
//
// Pages are described as view trees by the views package and wrapped in
// a replaceable layout, so the site configuration is always passed in
// explicitly rather than read from global state.
package docsite

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/eringen/docsite/views"
)

// App is the central docsite application. It wires together the doc
// cache, handlers, middleware, and layout.
type App struct {
	Config Config
	Echo   *echo.Echo
	Docs   *DocCache

	layout       func(site views.SiteConfig, path string) views.Layout
	limiter      *VisitorLimiter
	metrics      *prometheus.Registry
	customRoutes []func(*App)
	ready        bool
}

// New creates a new docsite App with the given configuration.
func New(cfg Config, opts ...Option) *App {
	cfg.setDefaults()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	a := &App{
		Config: cfg,
		Echo:   e,
		Docs:   NewDocCache(NewDocStore(cfg.DocsDir), cfg.DocCacheTTL),
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Setup validates the configuration and installs middleware and routes.
// Start calls it; tests call it directly and drive a.Echo with httptest.
func (a *App) Setup() error {
	if a.ready {
		return nil
	}
	if err := a.Config.Validate(); err != nil {
		return err
	}
	lvl, _ := parseLogLevel(a.Config.LogLevel)
	a.Echo.Logger.SetLevel(lvl)

	if !a.Config.DisableMetrics {
		a.metrics = prometheus.NewRegistry()
		a.metrics.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		if err := a.Docs.Register(a.metrics); err != nil {
			return fmt.Errorf("docsite: register metrics: %w", err)
		}
	}
	if a.Config.RateLimit > 0 {
		a.limiter = NewVisitorLimiter(a.Config.RateLimit, time.Minute)
	}

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	a.ready = true
	return nil
}

// Start sets the app up and serves until ctx is cancelled, then shuts the
// server down gracefully.
func (a *App) Start(ctx context.Context) error {
	if err := a.Setup(); err != nil {
		return err
	}

	if a.Config.WatchDocs {
		go func() {
			if err := a.WatchDocs(ctx); err != nil {
				a.Echo.Logger.Errorf("watch docs: %v", err)
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		a.Echo.Logger.Infof("serving %s on %s", a.Config.Title, a.Config.Addr)
		errCh <- a.Echo.Start(a.Config.Addr)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.Echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("docsite: shutdown: %w", err)
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded stylesheet first; anything else under /public comes from
	// the user's static dir.
	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	embeddedHandler := http.FileServer(http.FS(embeddedFS))
	e.GET(views.StylesheetPath, echo.WrapHandler(http.StripPrefix("/public/", embeddedHandler)))
	e.Static("/public", a.Config.StaticDir)

	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/healthz", handleHealth)
	if a.metrics != nil {
		e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
			Gatherer: a.metrics,
		}))
	}

	e.GET("/", a.handleHome)
	e.GET("/docs", handleDocsIndex)
	e.GET("/docs/*", a.handleDoc)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.limiter != nil {
		a.limiter.Stop()
	}
	return nil
}
