package views

import g "maragu.dev/gomponents"

// SiteConfig holds the site-wide settings the page builders read.
// It is built once at startup and passed into every builder, so nothing
// reads ambient state at render time.
type SiteConfig struct {
	Title         string // navbar brand and the "Hello from" prefix source
	URL           string // canonical base URL
	Description   string // default meta description and JSON-LD
	Author        string // JSON-LD author
	CopyrightYear int    // footer year, omitted when zero
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
}

// PageView is the renderer-agnostic description of one route: head
// metadata plus the body tree.
type PageView struct {
	Meta PageMeta
	Body g.Node
}

// Doc is a single rendered documentation page.
type Doc struct {
	Slug        string
	Title       string
	Description string
	HTML        string
	Draft       bool
}
