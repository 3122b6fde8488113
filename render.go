package docsite

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/eringen/docsite/views"
)

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}

// document wraps page in the full HTML document for this site.
func (a *App) document(page views.PageView) templ.Component {
	return views.Document(a.Config.Site(), page)
}

// pageLayout returns the layout for the page served at path.
func (a *App) pageLayout(path string) views.Layout {
	if a.layout != nil {
		return a.layout(a.Config.Site(), path)
	}
	return views.NewChromeLayout(a.Config.Site(), path)
}
