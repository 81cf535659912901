package sharecard

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// shareCacheControl lets the CDN serve share pages for 15 minutes and keep
// revalidating stale copies for a day. This is the only caching layer; the
// service itself never caches upstream metadata.
const shareCacheControl = "public, s-maxage=900, stale-while-revalidate=86400"

// handleShare renders the social redirect page for one devotion. It has
// exactly two outcomes: 400 with a fallback page when the slug does not
// parse, and 200 otherwise. Every upstream failure is absorbed into default
// content, never into an error status.
func (a *App) handleShare(c echo.Context) error {
	raw := c.Param("slug")
	if raw == "" {
		raw = c.QueryParam("slug")
	}
	origin := originFromRequest(c.Request(), a.Config.FallbackOrigin)

	parsed, ok := ParseSlug(raw)
	if !ok {
		doc := a.renderer.Render(RenderParams{TargetURL: origin + "/"})
		return RenderStatus(c, http.StatusBadRequest, templ.Raw(doc))
	}

	params := RenderParams{TargetURL: origin + parsed.AppPath}
	res := a.fetcher.Fetch(c.Request().Context(), parsed.Filename, origin)
	if res.Found {
		params.Title = res.Meta.Title
		params.Description = res.Meta.Subtitle
		params.ImageURL = res.Meta.ImageURL
	} else if res.Err != nil {
		c.Logger().Debugf("metadata unavailable for %s: %v", parsed.Filename, res.Err)
	}

	a.recordHit(c, parsed)

	c.Response().Header().Set("Cache-Control", shareCacheControl)
	return RenderStatus(c, http.StatusOK, templ.Raw(a.renderer.Render(params)))
}

// recordHit bumps the per-slug counter. Best-effort: a broken stats store
// must never break a share page.
func (a *App) recordHit(c echo.Context, parsed ParsedSlug) {
	if a.Store == nil {
		return
	}
	slug := strings.TrimPrefix(parsed.AppPath, "/")
	if err := a.Store.RecordHit(slug, parsed.Language); err != nil {
		c.Logger().Warnf("record hit for %s: %v", slug, err)
	}
}

// handleRoot sends visitors who land on the service itself to the app.
func (a *App) handleRoot(c echo.Context) error {
	return c.Redirect(http.StatusFound, a.Config.FallbackOrigin+"/")
}

func handleHealthz(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// handleRobots keeps crawlers on the share pages and off the admin surface.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /share/\nDisallow: /admin/\n\n# %s share service\n", a.Config.SiteName)
	return c.String(http.StatusOK, body)
}

// httpErrorHandler renders unrouted and failed requests as the same kind of
// self-contained page the share handler emits, pointing back at the app.
func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
	}
	origin := originFromRequest(c.Request(), a.Config.FallbackOrigin)
	doc := a.renderer.Render(RenderParams{TargetURL: origin + "/"})
	_ = RenderStatus(c, code, templ.Raw(doc))
}
