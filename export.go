package docsite

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/a-h/templ"
	"github.com/google/renameio/v2"

	"github.com/eringen/docsite/views"
)

// Export writes the site as static files under dir: index.html, one
// docs/<slug>/index.html per published doc, a docs/index.html redirect
// to the intro doc, 404.html, sitemap.xml and the embedded stylesheet. It returns the written paths relative to dir.
func (a *App) Export(ctx context.Context, dir string) ([]string, error) {
	site := a.Config.Site()
	var written []string

	write := func(rel string, data []byte) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		out := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			return err
		}
		if err := renameio.WriteFile(out, data, 0o644); err != nil {
			return fmt.Errorf("docsite: write %s: %w", out, err)
		}
		written = append(written, rel)
		return nil
	}
	component := func(rel string, cmp templ.Component) error {
		var buf bytes.Buffer
		if err := cmp.Render(ctx, &buf); err != nil {
			return fmt.Errorf("docsite: render %s: %w", rel, err)
		}
		return write(rel, buf.Bytes())
	}
	page := func(rel string, p views.PageView) error {
		return component(rel, a.document(p))
	}

	if err := page("index.html", views.HomePage(site, a.pageLayout("/"))); err != nil {
		return written, err
	}

	docs, err := a.Docs.ListDocs()
	if err != nil {
		return written, err
	}
	for _, d := range docs {
		if err := page("docs/"+d.Slug+"/index.html", views.DocPage(d, a.pageLayout("/docs/"+d.Slug))); err != nil {
			return written, err
		}
	}

	// Static hosts cannot answer /docs with a 302 like the server does.
	if err := component("docs/index.html", views.RedirectDocument(site, views.DocsIntroPath)); err != nil {
		return written, err
	}

	if err := page("404.html", views.NotFound(a.pageLayout("/404.html"))); err != nil {
		return written, err
	}

	var sm bytes.Buffer
	sm.WriteString(xml.Header)
	if err := xml.NewEncoder(&sm).Encode(a.buildSitemap(docs)); err != nil {
		return written, err
	}
	if err := write("sitemap.xml", sm.Bytes()); err != nil {
		return written, err
	}

	css, err := fs.ReadFile(EmbeddedAssets, "embedded/docsite.css")
	if err != nil {
		return written, err
	}
	if err := write("public/docsite.css", css); err != nil {
		return written, err
	}
	return written, nil
}
