package sharecard

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Renderer produces the share page HTML. It is a pure string transformer:
// same params in, same document out.
type Renderer struct {
	SiteName           string
	DefaultTitle       string
	DefaultDescription string
}

// RenderParams are the fully resolved inputs for one share page. TargetURL
// must be an absolute URL; the other fields may be empty, in which case the
// renderer falls back to its defaults (title, description) or omits the
// image tags entirely.
type RenderParams struct {
	Title       string
	Description string
	ImageURL    string
	TargetURL   string
}

// htmlEscaper covers the characters that matter in both attribute and text
// positions. Escaping here is the sole defense against injection from
// upstream metadata, so every interpolated string goes through it.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// scriptString encodes s as a JSON string literal for use inside a <script>
// block. encoding/json escapes <, > and & as \u00XX, so the literal can
// never terminate the script element. This is deliberately a separate pass
// from escapeHTML: the redirect script needs the raw URL, not the
// HTML-escaped one.
func scriptString(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		return `""`
	}
	return string(b)
}

// Render builds the complete share page: social preview tags for crawlers,
// an instant redirect for browsers, and a plain link for everything else.
// Default title/description are applied on the raw values before escaping.
func (r *Renderer) Render(p RenderParams) string {
	title := p.Title
	if title == "" {
		title = r.DefaultTitle
	}
	desc := p.Description
	if desc == "" {
		desc = r.DefaultDescription
	}

	t := escapeHTML(title)
	d := escapeHTML(desc)
	img := escapeHTML(p.ImageURL)
	u := escapeHTML(p.TargetURL)
	site := escapeHTML(r.SiteName)

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", t)
	fmt.Fprintf(&b, "<meta name=\"description\" content=\"%s\">\n", d)
	b.WriteString("<meta property=\"og:type\" content=\"website\">\n")
	fmt.Fprintf(&b, "<meta property=\"og:site_name\" content=\"%s\">\n", site)
	fmt.Fprintf(&b, "<meta property=\"og:title\" content=\"%s\">\n", t)
	fmt.Fprintf(&b, "<meta property=\"og:description\" content=\"%s\">\n", d)
	if img != "" {
		fmt.Fprintf(&b, "<meta property=\"og:image\" content=\"%s\">\n", img)
	}
	fmt.Fprintf(&b, "<meta property=\"og:url\" content=\"%s\">\n", u)
	b.WriteString("<meta name=\"twitter:card\" content=\"summary_large_image\">\n")
	fmt.Fprintf(&b, "<meta name=\"twitter:title\" content=\"%s\">\n", t)
	fmt.Fprintf(&b, "<meta name=\"twitter:description\" content=\"%s\">\n", d)
	if img != "" {
		fmt.Fprintf(&b, "<meta name=\"twitter:image\" content=\"%s\">\n", img)
	}
	fmt.Fprintf(&b, "<meta http-equiv=\"refresh\" content=\"0;url=%s\">\n", u)
	fmt.Fprintf(&b, "<link rel=\"canonical\" href=\"%s\">\n", u)
	b.WriteString("</head>\n<body>\n")
	fmt.Fprintf(&b, "<script>window.location.replace(%s);</script>\n", scriptString(p.TargetURL))
	fmt.Fprintf(&b, "<p><a href=\"%s\">Continue to %s</a></p>\n", u, site)
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

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
