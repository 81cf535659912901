package sharecard

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/daily-devotion/sharecard/views"
)

// topSlugLimit bounds the dashboard table.
const topSlugLimit = 50

func (a *App) handleAdmin(c echo.Context) error {
	if !isAdmin(c) {
		return Render(c, views.AdminLogin(a.siteConfig(), false, csrfToken(c)))
	}
	return a.renderDashboard(c)
}

func (a *App) handleAdminLogin(c echo.Context) error {
	if !a.loginLimiter.Allow(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	pass := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(pass), []byte(a.Config.AdminPassword)) == 1 {
		if err := setAdminSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	return Render(c, views.AdminLogin(a.siteConfig(), true, csrfToken(c)))
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

func (a *App) renderDashboard(c echo.Context) error {
	total, err := a.Store.TotalHits()
	if err != nil {
		return err
	}
	top, err := a.Store.TopSlugs(topSlugLimit)
	if err != nil {
		return err
	}
	return Render(c, views.AdminDashboard(a.siteConfig(), total, viewSlugStats(top), csrfToken(c)))
}

// viewSlugStats mirrors store rows into the view-facing type, keeping the
// views package free of store imports.
func viewSlugStats(stats []SlugStats) []views.SlugStats {
	out := make([]views.SlugStats, len(stats))
	for i, st := range stats {
		out[i] = views.SlugStats{
			Slug:     st.Slug,
			Language: st.Language,
			Hits:     st.Hits,
			LastHit:  st.LastHit,
		}
	}
	return out
}

func (a *App) siteConfig() views.SiteConfig {
	return views.SiteConfig{Name: a.Config.SiteName}
}
