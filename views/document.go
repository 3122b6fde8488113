package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html" //nolint:revive,staticcheck
)

// StylesheetPath is where the server mounts the embedded stylesheet.
const StylesheetPath = "/public/docsite.css"

// Document renders a full HTML document for page: head metadata from
// page.Meta and the body tree.
func Document(site SiteConfig, page PageView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := page.Meta
		return Doctype(
			HTML(Lang("en"),
				Head(
					Meta(Charset("utf-8")),
					Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
					TitleEl(g.Text(m.Title)),
					Meta(Name("description"), Content(m.Description)),
					Meta(g.Attr("property", "og:title"), Content(m.Title)),
					Meta(g.Attr("property", "og:description"), Content(m.Description)),
					Meta(g.Attr("property", "og:type"), Content(m.OGType)),
					g.If(m.URL != "", g.Group{
						Meta(g.Attr("property", "og:url"), Content(m.URL)),
						Link(Rel("canonical"), Href(m.URL)),
					}),
					Link(Rel("stylesheet"), Href(StylesheetPath)),
					Script(Type("application/ld+json"), g.Raw(WebsiteJsonLD(site))),
				),
				Body(page.Body),
			),
		).Render(w)
	})
}

// RedirectDocument is a static stand-in for a server-side redirect: it
// sends browsers on to target with a meta refresh.
func RedirectDocument(site SiteConfig, target string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return Doctype(
			HTML(Lang("en"),
				Head(
					Meta(Charset("utf-8")),
					TitleEl(g.Text(site.Title)),
					Meta(g.Attr("http-equiv", "refresh"), Content("0; url="+target)),
					Link(Rel("canonical"), Href(BuildURL(site.URL, target))),
				),
				Body(
					P(g.Text("Redirecting to "), A(Href(target), g.Text(target)), g.Text(".")),
				),
			),
		).Render(w)
	})
}
