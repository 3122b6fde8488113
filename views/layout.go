package views

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html" //nolint:revive,staticcheck
)

// Layout wraps page specific content in site chrome and attaches the
// head metadata.
type Layout interface {
	RenderLayout(title, description string, body g.Node) PageView
}

// LayoutFunc adapts a plain function to Layout.
type LayoutFunc func(title, description string, body g.Node) PageView

// RenderLayout calls f.
func (f LayoutFunc) RenderLayout(title, description string, body g.Node) PageView {
	return f(title, description, body)
}

// BareLayout attaches metadata and returns body unchanged.
var BareLayout Layout = LayoutFunc(func(title, description string, body g.Node) PageView {
	return PageView{
		Meta: PageMeta{Title: title, Description: description, OGType: "website"},
		Body: body,
	}
})

// ChromeLayout is the default site layout: a navbar above the page
// content and a footer below it.
type ChromeLayout struct {
	Site   SiteConfig
	Path   string // request path, used for the canonical URL
	OGType string // defaults to "website"
}

// NewChromeLayout returns the layout for the page served at path.
func NewChromeLayout(site SiteConfig, path string) ChromeLayout {
	return ChromeLayout{Site: site, Path: path}
}

// RenderLayout implements Layout.
func (l ChromeLayout) RenderLayout(title, description string, body g.Node) PageView {
	if description == "" {
		description = l.Site.Description
	}
	ogType := l.OGType
	if ogType == "" {
		ogType = "website"
	}
	return PageView{
		Meta: PageMeta{
			Title:       title,
			Description: description,
			URL:         BuildURL(l.Site.URL, l.Path),
			OGType:      ogType,
		},
		Body: g.Group{
			Nav(Class("navbar"),
				A(Class("navbar__brand"), Href("/"), g.Text(l.Site.Title)),
				A(Class("navbar__link"), Href("/docs"), g.Text("Docs")),
			),
			body,
			Footer(Class("footer"), g.Text(copyright(l.Site))),
		},
	}
}

func copyright(site SiteConfig) string {
	if site.CopyrightYear == 0 {
		return "Copyright © " + site.Title + "."
	}
	return "Copyright © " + strconv.Itoa(site.CopyrightYear) + " " + site.Title + "."
}
