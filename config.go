package docsite

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/gommon/log"
	"gopkg.in/yaml.v3"

	"github.com/eringen/docsite/views"
)

// Config holds all configuration for a docsite server.
type Config struct {
	Title       string `yaml:"title"`       // Site title (default "Docs")
	URL         string `yaml:"url"`         // Canonical URL (default "http://localhost:3000")
	Description string `yaml:"description"` // Site description for meta tags
	Author      string `yaml:"author"`      // Author name for JSON-LD

	Addr      string `yaml:"addr"`       // Listen address (default ":3000")
	DocsDir   string `yaml:"docs_dir"`   // Markdown root (default "docs")
	StaticDir string `yaml:"static_dir"` // User static assets (default "public")

	DocCacheTTL time.Duration `yaml:"doc_cache_ttl"` // Doc cache TTL (default 5min)
	WatchDocs   bool          `yaml:"watch_docs"`    // Invalidate the doc cache on file changes

	CopyrightYear int `yaml:"copyright_year"` // Footer year (default: the year the config is loaded)

	LogLevel       string `yaml:"log_level"`       // debug, info, warn, error, off (default info)
	DisableMetrics bool   `yaml:"disable_metrics"` // Turn off /metrics
	RateLimit      int    `yaml:"rate_limit"`      // Requests per IP per minute (default 120, <0 disables)
}

func (c *Config) setDefaults() {
	if c.Title == "" {
		c.Title = "Docs"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DocsDir == "" {
		c.DocsDir = "docs"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.DocCacheTTL == 0 {
		c.DocCacheTTL = 5 * time.Minute
	}
	if c.CopyrightYear == 0 {
		c.CopyrightYear = time.Now().Year()
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.RateLimit == 0 {
		c.RateLimit = 120
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	u, err := url.Parse(c.URL)
	if err != nil {
		return fmt.Errorf("docsite: invalid url %q: %w", c.URL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("docsite: url %q must be absolute", c.URL)
	}
	if c.DocCacheTTL < 0 {
		return errors.New("docsite: doc_cache_ttl must not be negative")
	}
	if _, err := parseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Site returns the settings the page builders read.
func (c Config) Site() views.SiteConfig {
	return views.SiteConfig{
		Title:         c.Title,
		URL:           c.URL,
		Description:   c.Description,
		Author:        c.Author,
		CopyrightYear: c.CopyrightYear,
	}
}

// LoadConfig reads the YAML file at path (skipped when path is empty),
// applies DOCSITE_* environment overrides, fills defaults and validates.
// ${VAR} references in the file are expanded from the environment.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("docsite: read config: %w", err)
		}
		dec := yaml.NewDecoder(strings.NewReader(os.ExpandEnv(string(data))))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("docsite: parse config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	strs := []struct {
		key string
		dst *string
	}{
		{"DOCSITE_TITLE", &c.Title},
		{"DOCSITE_URL", &c.URL},
		{"DOCSITE_DESCRIPTION", &c.Description},
		{"DOCSITE_AUTHOR", &c.Author},
		{"DOCSITE_ADDR", &c.Addr},
		{"DOCSITE_DOCS_DIR", &c.DocsDir},
		{"DOCSITE_STATIC_DIR", &c.StaticDir},
		{"DOCSITE_LOG_LEVEL", &c.LogLevel},
	}
	for _, s := range strs {
		if v := os.Getenv(s.key); v != "" {
			*s.dst = v
		}
	}
	if v := os.Getenv("DOCSITE_DOC_CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("docsite: DOCSITE_DOC_CACHE_TTL: %w", err)
		}
		c.DocCacheTTL = d
	}
	if v := os.Getenv("DOCSITE_WATCH_DOCS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("docsite: DOCSITE_WATCH_DOCS: %w", err)
		}
		c.WatchDocs = b
	}
	ints := []struct {
		key string
		dst *int
	}{
		{"DOCSITE_RATE_LIMIT", &c.RateLimit},
		{"DOCSITE_COPYRIGHT_YEAR", &c.CopyrightYear},
	}
	for _, i := range ints {
		v := os.Getenv(i.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("docsite: %s: %w", i.key, err)
		}
		*i.dst = n
	}
	return nil
}

func parseLogLevel(s string) (log.Lvl, error) {
	switch strings.ToLower(s) {
	case "debug":
		return log.DEBUG, nil
	case "info", "":
		return log.INFO, nil
	case "warn", "warning":
		return log.WARN, nil
	case "error":
		return log.ERROR, nil
	case "off":
		return log.OFF, nil
	}
	return 0, fmt.Errorf("docsite: unknown log level %q", s)
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App after the built-in routes are set up.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithLayout replaces the default page chrome. The factory receives the
// request path of the page being rendered.
func WithLayout(fn func(site views.SiteConfig, path string) views.Layout) Option {
	return func(a *App) {
		a.layout = fn
	}
}
