package views

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html" //nolint:revive,staticcheck
)

func TestInlineStyleOrder(t *testing.T) {
	out := renderNode(t, Div(InlineStyle(Decl{"height", "50vh"}, Decl{"display", "flex"})))
	assert.Equal(t, `<div style="height: 50vh; display: flex"></div>`, out)
}

func TestChromeLayout(t *testing.T) {
	site := SiteConfig{Title: "Acme Docs", URL: "https://docs.example.com", Description: "Site docs", CopyrightYear: 2024}
	page := NewChromeLayout(site, "/docs/intro").RenderLayout("Intro", "", Main(g.Text("body")))

	assert.Equal(t, "Intro", page.Meta.Title)
	assert.Equal(t, "Site docs", page.Meta.Description)
	assert.Equal(t, "https://docs.example.com/docs/intro", page.Meta.URL)
	assert.Equal(t, "website", page.Meta.OGType)

	body := parseNode(t, page.Body)
	navs := findAll(body, "nav")
	require.Len(t, navs, 1)
	links := findAll(navs[0], "a")
	require.Len(t, links, 2)
	assert.Equal(t, "/", attrOf(links[0], "href"))
	assert.Equal(t, "Acme Docs", textOf(links[0]))
	assert.Equal(t, "/docs", attrOf(links[1], "href"))

	mains := findAll(body, "main")
	require.Len(t, mains, 1)
	assert.Equal(t, "body", textOf(mains[0]))

	footers := findAll(body, "footer")
	require.Len(t, footers, 1)
	assert.Equal(t, "Copyright © 2024 Acme Docs.", textOf(footers[0]))
}

func TestChromeLayoutWithoutYear(t *testing.T) {
	site := SiteConfig{Title: "Acme Docs", URL: "https://docs.example.com"}
	layout := NewChromeLayout(site, "/")

	first := renderNode(t, layout.RenderLayout("Home", "", Main()).Body)
	second := renderNode(t, layout.RenderLayout("Home", "", Main()).Body)
	assert.Equal(t, first, second)

	footers := findAll(parseNode(t, layout.RenderLayout("Home", "", Main()).Body), "footer")
	require.Len(t, footers, 1)
	assert.Equal(t, "Copyright © Acme Docs.", textOf(footers[0]))
}

func TestDocPageKeepsRenderedHTML(t *testing.T) {
	doc := Doc{Slug: "intro", Title: "Intro", HTML: "<h2 id=\"setup\">Setup</h2>"}
	page := DocPage(doc, BareLayout)

	assert.Equal(t, "Intro", page.Meta.Title)
	assert.Equal(t, `<main class="doc"><article class="markdown"><h2 id="setup">Setup</h2></article></main>`,
		renderNode(t, page.Body))
}

func TestStatusPages(t *testing.T) {
	tests := []struct {
		name    string
		page    PageView
		heading string
	}{
		{"not found", NotFound(BareLayout), "Page Not Found"},
		{"server error", ServerError(BareLayout), "Something Went Wrong"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.heading, tt.page.Meta.Title)
			h1s := findAll(parseNode(t, tt.page.Body), "h1")
			require.Len(t, h1s, 1)
			assert.Equal(t, tt.heading, textOf(h1s[0]))
		})
	}
}

func TestRedirectDocument(t *testing.T) {
	site := SiteConfig{Title: "Acme Docs", URL: "https://docs.example.com"}
	var buf bytes.Buffer
	require.NoError(t, RedirectDocument(site, DocsIntroPath).Render(context.Background(), &buf))

	doc := parseNode(t, g.Raw(buf.String()))
	var refresh string
	for _, m := range findAll(doc, "meta") {
		if attrOf(m, "http-equiv") == "refresh" {
			refresh = attrOf(m, "content")
		}
	}
	assert.Equal(t, "0; url=/docs/intro", refresh)

	links := findAll(doc, "a")
	require.Len(t, links, 1)
	assert.Equal(t, "/docs/intro", attrOf(links[0], "href"))
}

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base     string
		segments []string
		want     string
	}{
		{"http://localhost:3000", nil, "http://localhost:3000/"},
		{"http://localhost:3000", []string{"/"}, "http://localhost:3000/"},
		{"http://localhost:3000/", []string{"/docs/intro"}, "http://localhost:3000/docs/intro"},
		{"https://example.com/site/", []string{"/"}, "https://example.com/site/"},
		{"https://example.com/site", []string{"/docs/intro"}, "https://example.com/site/docs/intro"},
		{"https://example.com", []string{"docs", "guides/setup"}, "https://example.com/docs/guides/setup"},
		{"https://example.com", []string{"sitemap.xml"}, "https://example.com/sitemap.xml"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BuildURL(tt.base, tt.segments...), "BuildURL(%q, %q)", tt.base, tt.segments)
	}
}
