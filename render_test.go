package sharecard

import (
	"strings"
	"testing"
)

func testRenderer() *Renderer {
	return &Renderer{
		SiteName:           "Daily Devotion",
		DefaultTitle:       "Daily Devotion",
		DefaultDescription: "Read today's devotion.",
	}
}

func TestEscapeHTML(t *testing.T) {
	in := `&<>"'`
	want := "&amp;&lt;&gt;&quot;&#39;"
	if got := escapeHTML(in); got != want {
		t.Errorf("escapeHTML(%q) = %q, want %q", in, got, want)
	}
	// Already-escaped input is escaped again, not trusted.
	if got := escapeHTML("&amp;"); got != "&amp;amp;" {
		t.Errorf("escapeHTML(%q) = %q, want %q", "&amp;", got, "&amp;amp;")
	}
}

func TestRenderEscapesMetadata(t *testing.T) {
	doc := testRenderer().Render(RenderParams{
		Title:       `<script>alert("x")</script>`,
		Description: `a & b's "quote"`,
		TargetURL:   "https://example.org/15-08-2024-EN",
	})
	if strings.Contains(doc, "<script>alert") {
		t.Error("rendered document contains unescaped script tag from title")
	}
	if !strings.Contains(doc, "&lt;script&gt;") {
		t.Error("rendered document missing escaped title")
	}
	if !strings.Contains(doc, "a &amp; b&#39;s &quot;quote&quot;") {
		t.Error("rendered document missing escaped description")
	}
}

func TestRenderAppliesDefaults(t *testing.T) {
	doc := testRenderer().Render(RenderParams{TargetURL: "https://example.org/"})
	if !strings.Contains(doc, "<title>Daily Devotion</title>") {
		t.Error("default title not applied")
	}
	if !strings.Contains(doc, `<meta property="og:description" content="Read today&#39;s devotion.">`) {
		t.Error("default description not applied")
	}
}

func TestRenderOmitsImageTagsWhenEmpty(t *testing.T) {
	doc := testRenderer().Render(RenderParams{TargetURL: "https://example.org/"})
	if strings.Contains(doc, "og:image") || strings.Contains(doc, "twitter:image") {
		t.Error("image tags present despite empty image URL")
	}

	doc = testRenderer().Render(RenderParams{
		ImageURL:  "https://example.org/img.png",
		TargetURL: "https://example.org/",
	})
	if !strings.Contains(doc, `<meta property="og:image" content="https://example.org/img.png">`) {
		t.Error("og:image missing")
	}
	if !strings.Contains(doc, `<meta name="twitter:image" content="https://example.org/img.png">`) {
		t.Error("twitter:image missing")
	}
}

// The target URL is inserted twice: HTML-escaped for attributes and links,
// and JSON-encoded for the redirect script. Both redirects must survive a
// URL containing characters special to either context.
func TestRenderDualEncodesTargetURL(t *testing.T) {
	target := "https://example.org/15-08-2024-EN?a=1&b=2"
	doc := testRenderer().Render(RenderParams{TargetURL: target})

	if !strings.Contains(doc, `<link rel="canonical" href="https://example.org/15-08-2024-EN?a=1&amp;b=2">`) {
		t.Error("canonical link missing HTML-escaped target")
	}
	if !strings.Contains(doc, `<meta http-equiv="refresh" content="0;url=https://example.org/15-08-2024-EN?a=1&amp;b=2">`) {
		t.Error("refresh directive missing HTML-escaped target")
	}
	// encoding/json HTML-escapes & to \u0026, which decodes back to & in
	// the script context, so the literal stays safe inside the document.
	if !strings.Contains(doc, `window.location.replace("https://example.org/15-08-2024-EN?a=1\u0026b=2");`) {
		t.Error("redirect script missing JSON-encoded target")
	}
}

func TestScriptStringEncodesAmpersand(t *testing.T) {
	got := scriptString("https://example.org/x?a=1&b=2")
	want := `"https://example.org/x?a=1\u0026b=2"`
	if got != want {
		t.Errorf("scriptString = %s, want %s", got, want)
	}
}

func TestScriptStringEscapesScriptTerminator(t *testing.T) {
	got := scriptString(`</script><script>alert(1)</script>`)
	if strings.Contains(got, "</script>") {
		t.Errorf("scriptString output %q can terminate a script element", got)
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	p := RenderParams{
		Title:       "T",
		Description: "S",
		ImageURL:    "https://example.org/img.png",
		TargetURL:   "https://example.org/15-08-2024-EN",
	}
	r := testRenderer()
	if r.Render(p) != r.Render(p) {
		t.Error("identical params produced different documents")
	}
}
