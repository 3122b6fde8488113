package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html" //nolint:revive,staticcheck
)

// DocsIntroPath is the entry point of the documentation tree.
const DocsIntroPath = "/docs/intro"

const (
	homeDescription = "Description will go into a meta tag in <head />"
	homeHeading     = "Welcome to the Docusaurus Site!"
	homeIntro       = "This site hosts the documentation for the Cursor AI Rules. " +
		"Learn how to set up and use the rules to enhance your AI workflows."
)

// HomeTitle is the page title of the landing page for a site titled title.
func HomeTitle(title string) string {
	return "Hello from " + title
}

// HomePage builds the landing page and hands it to layout for the page chrome.
// The result depends only on cfg.Title.
func HomePage(cfg SiteConfig, layout Layout) PageView {
	body := Main(
		Div(
			InlineStyle(
				Decl{"display", "flex"},
				Decl{"justify-content", "center"},
				Decl{"align-items", "center"},
				Decl{"height", "50vh"},
				Decl{"font-size", "20px"},
			),
			Div(
				H1(g.Text(homeHeading)),
				P(g.Text(homeIntro)),
				P(
					g.Text("Check out the "),
					A(Href(DocsIntroPath), g.Text("documentation")),
					g.Text(" to get started."),
				),
			),
		),
	)
	return layout.RenderLayout(HomeTitle(cfg.Title), homeDescription, body)
}
