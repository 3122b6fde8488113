package views

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	g "maragu.dev/gomponents"
)

const introText = "This site hosts the documentation for the Cursor AI Rules. " +
	"Learn how to set up and use the rules to enhance your AI workflows."

func renderDocument(t *testing.T, site SiteConfig, page PageView) *html.Node {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Document(site, page).Render(context.Background(), &buf))
	doc, err := html.Parse(&buf)
	require.NoError(t, err)
	return doc
}

func renderNode(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func parseNode(t *testing.T, n g.Node) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(renderNode(t, n)))
	require.NoError(t, err)
	return doc
}

func findAll(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func textOf(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func attrOf(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func TestHomePageMetadata(t *testing.T) {
	page := HomePage(SiteConfig{Title: "Acme Docs"}, BareLayout)

	assert.Equal(t, "Hello from Acme Docs", page.Meta.Title)
	assert.Equal(t, "Description will go into a meta tag in <head />", page.Meta.Description)
}

func TestHomePageEmptyTitle(t *testing.T) {
	withTitle := HomePage(SiteConfig{Title: "Acme Docs"}, BareLayout)
	empty := HomePage(SiteConfig{}, BareLayout)

	assert.Equal(t, "Hello from ", empty.Meta.Title)
	assert.Equal(t, renderNode(t, withTitle.Body), renderNode(t, empty.Body))
}

func TestHomePageBody(t *testing.T) {
	page := HomePage(SiteConfig{Title: "Acme Docs"}, BareLayout)
	body := parseNode(t, page.Body)

	mains := findAll(body, "main")
	require.Len(t, mains, 1)

	headings := findAll(mains[0], "h1")
	require.Len(t, headings, 1)
	assert.Equal(t, "Welcome to the Docusaurus Site!", textOf(headings[0]))

	paras := findAll(mains[0], "p")
	require.Len(t, paras, 2)
	assert.Equal(t, introText, textOf(paras[0]))
	assert.Equal(t, "Check out the documentation to get started.", textOf(paras[1]))

	links := findAll(mains[0], "a")
	require.Len(t, links, 1)
	assert.Equal(t, "/docs/intro", attrOf(links[0], "href"))
	assert.Equal(t, "documentation", textOf(links[0]))
}

func TestHomePageCenteredBlockStyle(t *testing.T) {
	page := HomePage(SiteConfig{Title: "Acme Docs"}, BareLayout)

	divs := findAll(parseNode(t, page.Body), "div")
	require.Len(t, divs, 2)
	assert.Equal(t, "display: flex; justify-content: center; align-items: center; height: 50vh; font-size: 20px",
		attrOf(divs[0], "style"))
	assert.Empty(t, attrOf(divs[1], "style"))
}

func TestHomePageIsDeterministic(t *testing.T) {
	cfg := SiteConfig{Title: "Acme Docs", CopyrightYear: 2024}
	layout := NewChromeLayout(cfg, "/")

	first := HomePage(cfg, layout)
	second := HomePage(cfg, layout)

	assert.Equal(t, first.Meta, second.Meta)
	assert.Equal(t, renderNode(t, first.Body), renderNode(t, second.Body))
}

func TestHomePageConcurrentRenders(t *testing.T) {
	cfg := SiteConfig{Title: "Acme Docs", CopyrightYear: 2024}
	layout := NewChromeLayout(cfg, "/")
	want := renderNode(t, HomePage(cfg, layout).Body)

	var wg sync.WaitGroup
	results := make([]string, 16)
	errs := make([]error, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var b strings.Builder
			errs[i] = HomePage(cfg, layout).Body.Render(&b)
			results[i] = b.String()
		}(i)
	}
	wg.Wait()
	for i, got := range results {
		assert.NoError(t, errs[i])
		assert.Equal(t, want, got)
	}
}

func TestHomePageDocument(t *testing.T) {
	site := SiteConfig{Title: "Acme Docs", URL: "https://docs.example.com"}
	doc := renderDocument(t, site, HomePage(site, NewChromeLayout(site, "/")))

	titles := findAll(doc, "title")
	require.Len(t, titles, 1)
	assert.Equal(t, "Hello from Acme Docs", textOf(titles[0]))

	var description string
	for _, m := range findAll(doc, "meta") {
		if attrOf(m, "name") == "description" {
			description = attrOf(m, "content")
		}
	}
	assert.Equal(t, "Description will go into a meta tag in <head />", description)

	mains := findAll(doc, "main")
	require.Len(t, mains, 1)
	h1s := findAll(mains[0], "h1")
	require.Len(t, h1s, 1)
	assert.Equal(t, "Welcome to the Docusaurus Site!", textOf(h1s[0]))
	assert.Contains(t, textOf(mains[0]), introText)

	var intro []*html.Node
	for _, a := range findAll(doc, "a") {
		if attrOf(a, "href") == "/docs/intro" {
			intro = append(intro, a)
		}
	}
	require.Len(t, intro, 1)
	assert.Equal(t, "documentation", textOf(intro[0]))
}

func TestDocumentEscapesTitle(t *testing.T) {
	site := SiteConfig{Title: `<script>alert("x")</script>`}
	var buf bytes.Buffer
	page := HomePage(site, NewChromeLayout(site, "/"))
	require.NoError(t, Document(site, page).Render(context.Background(), &buf))

	out := buf.String()
	assert.NotContains(t, out, `<script>alert`)
	assert.Contains(t, out, "&lt;script&gt;")
}
