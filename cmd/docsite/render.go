package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/eringen/docsite"
)

type renderCmd struct {
	Output string `short:"o" help:"Output directory." default:"build" type:"path"`
	Force  bool   `help:"Write into a non-empty output directory."`
}

func (r *renderCmd) Run(g *globals) error {
	cfg, err := loadConfig(g.Config)
	if err != nil {
		return err
	}
	return runRender(context.Background(), cfg, r.Output, r.Force, os.Stdout)
}

func runRender(ctx context.Context, cfg docsite.Config, out string, force bool, w io.Writer) error {
	if !force {
		entries, err := os.ReadDir(out)
		if err == nil && len(entries) > 0 {
			return fmt.Errorf("directory %q is not empty, use --force to overwrite", out)
		}
	}

	app := docsite.New(cfg)
	defer app.Close()

	fmt.Fprintf(w, "Rendering %s into %s\n\n", cfg.Title, out)
	written, err := app.Export(ctx, out)
	for _, rel := range written {
		fmt.Fprintf(w, "  created %s\n", filepath.Join(out, filepath.FromSlash(rel)))
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nDone! %d files written.\n", len(written))
	return nil
}
