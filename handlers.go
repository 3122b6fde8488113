package docsite

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eringen/docsite/views"
)

func (a *App) handleHome(c echo.Context) error {
	page := views.HomePage(a.Config.Site(), a.pageLayout("/"))
	return Render(c, a.document(page))
}

func handleDocsIndex(c echo.Context) error {
	return c.Redirect(http.StatusFound, views.DocsIntroPath)
}

func (a *App) handleDoc(c echo.Context) error {
	slug := strings.TrimSuffix(c.Param("*"), "/")
	doc, err := a.Docs.GetDoc(slug)
	if err != nil {
		if errors.Is(err, ErrDocNotFound) {
			return RenderStatus(c, http.StatusNotFound, a.document(views.NotFound(a.pageLayout(c.Request().URL.Path))))
		}
		return err
	}
	return Render(c, a.document(views.DocPage(doc, a.pageLayout("/docs/"+doc.Slug))))
}

func (a *App) handleSitemap(c echo.Context) error {
	docs, err := a.Docs.ListDocs()
	if err != nil {
		return err
	}
	return a.renderSitemap(c, docs)
}

// handleRobots generates robots.txt dynamically using the site URL.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s\n", views.BuildURL(a.Config.URL, "sitemap.xml"))
	return c.String(http.StatusOK, body)
}

func handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	layout := a.pageLayout(c.Request().URL.Path)
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.document(views.NotFound(layout)))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.document(views.ServerError(layout)))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
