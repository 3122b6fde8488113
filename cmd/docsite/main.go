package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/eringen/docsite"
)

// version is set at build time via ldflags.
var version = "dev"

type globals struct {
	Config string `short:"c" help:"Path to a YAML configuration file." type:"path"`
}

type cli struct {
	Globals globals `embed:""`

	Serve   serveCmd   `cmd:"" default:"1" help:"Serve the documentation site."`
	Render  renderCmd  `cmd:"" help:"Write the site as static HTML files."`
	Version versionCmd `cmd:"" help:"Print the docsite version."`
}

type serveCmd struct {
	Addr  string `help:"Listen address, overrides the config file."`
	Watch bool   `help:"Reload docs when Markdown files change."`
}

func (s *serveCmd) Run(g *globals) error {
	cfg, err := loadConfig(g.Config)
	if err != nil {
		return err
	}
	if s.Addr != "" {
		cfg.Addr = s.Addr
	}
	if s.Watch {
		cfg.WatchDocs = true
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := docsite.New(cfg)
	defer app.Close()
	return app.Start(ctx)
}

type versionCmd struct{}

func (v *versionCmd) Run() error {
	fmt.Printf("docsite %s\n", version)
	return nil
}

func main() {
	var c cli
	ctx := kong.Parse(&c,
		kong.Name("docsite"),
		kong.Description("A documentation site server built with Go, Echo, and templ."),
		kong.UsageOnError(),
	)
	if err := ctx.Run(&c.Globals); err != nil {
		log.Fatalf("docsite: %v", err)
	}
}

// loadConfig loads .env files (never overriding the real environment)
// and then the YAML config.
func loadConfig(path string) (docsite.Config, error) {
	for _, f := range []string{".env", ".env.local"} {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return docsite.Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return docsite.LoadConfig(path)
}
