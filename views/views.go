// Package views holds the templ components for the admin surface.
// The public share page is not rendered here: its escaping rules are owned
// by the sharecard renderer.
package views

import (
	"context"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// AdminLogin renders the admin password form. showError adds a failed-login
// notice above the form.
func AdminLogin(cfg SiteConfig, showError bool, csrfToken string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(pageHead(cfg.Name + " Admin"))
		fmt.Fprintf(&b, "<h1>%s Admin</h1>\n", html.EscapeString(cfg.Name))
		if showError {
			b.WriteString("<p class=\"error\">Wrong password.</p>\n")
		}
		b.WriteString("<form method=\"post\" action=\"/admin/login/\">\n")
		fmt.Fprintf(&b, "<input type=\"hidden\" name=\"_csrf\" value=%q>\n", csrfToken)
		b.WriteString("<input type=\"password\" name=\"password\" autofocus>\n")
		b.WriteString("<button type=\"submit\">Log in</button>\n</form>\n")
		b.WriteString(pageFoot)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// AdminDashboard renders total and per-slug share-hit counts.
func AdminDashboard(cfg SiteConfig, total int64, top []SlugStats, csrfToken string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(pageHead(cfg.Name + " Stats"))
		fmt.Fprintf(&b, "<h1>%s Stats</h1>\n", html.EscapeString(cfg.Name))
		fmt.Fprintf(&b, "<p>Total share hits: %d</p>\n", total)
		b.WriteString("<table>\n<tr><th>Slug</th><th>Language</th><th>Hits</th><th>Last hit (UTC)</th></tr>\n")
		for _, st := range top {
			fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%d</td><td>%s</td></tr>\n",
				html.EscapeString(st.Slug), html.EscapeString(st.Language), st.Hits, html.EscapeString(st.LastHit))
		}
		b.WriteString("</table>\n")
		b.WriteString("<form method=\"post\" action=\"/admin/logout/\">\n")
		fmt.Fprintf(&b, "<input type=\"hidden\" name=\"_csrf\" value=%q>\n", csrfToken)
		b.WriteString("<button type=\"submit\">Log out</button>\n</form>\n")
		b.WriteString(pageFoot)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func pageHead(title string) string {
	return "<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n" +
		"<meta name=\"robots\" content=\"noindex\">\n" +
		"<title>" + html.EscapeString(title) + "</title>\n" +
		"<style>body{font-family:sans-serif;max-width:40rem;margin:2rem auto;padding:0 1rem}" +
		"table{border-collapse:collapse}td,th{border:1px solid #ccc;padding:.3rem .6rem}" +
		".error{color:#b00}</style>\n</head>\n<body>\n"
}

const pageFoot = "</body>\n</html>\n"
