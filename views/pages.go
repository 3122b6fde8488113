package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html" //nolint:revive,staticcheck
)

// DocPage wraps a rendered documentation page in layout.
func DocPage(doc Doc, layout Layout) PageView {
	return layout.RenderLayout(doc.Title, doc.Description,
		Main(Class("doc"),
			Article(Class("markdown"), g.Raw(doc.HTML)),
		),
	)
}

// NotFound is the 404 page.
func NotFound(layout Layout) PageView {
	return statusPage(layout, "Page Not Found",
		"We could not find what you were looking for.")
}

// ServerError is the 500 page.
func ServerError(layout Layout) PageView {
	return statusPage(layout, "Something Went Wrong",
		"The server hit an unexpected error. Please try again later.")
}

func statusPage(layout Layout, heading, message string) PageView {
	return layout.RenderLayout(heading, message,
		Main(Class("status"),
			H1(g.Text(heading)),
			P(g.Text(message)),
			P(A(Href("/"), g.Text("Back to the home page"))),
		),
	)
}
