package sharecard

import (
	"net/http"
	"net/url"
	"strings"
)

// originFromRequest derives the public scheme://host origin the client used,
// trusting proxy-forwarded headers. When the request carries no host at all,
// fallback is returned so the emitted page still links somewhere real.
func originFromRequest(r *http.Request, fallback string) string {
	proto := firstValue(r.Header.Values("X-Forwarded-Proto"))
	if proto == "" {
		proto = "https"
	}
	host := r.Host
	if host == "" {
		host = firstValue(r.Header.Values("Host"))
	}
	if host == "" {
		return strings.TrimSuffix(fallback, "/")
	}
	return proto + "://" + host
}

// firstValue normalizes a multi-valued header to its first entry.
func firstValue(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// absoluteURL resolves ref against base using standard URL-resolution
// semantics. Anything that cannot be resolved to an absolute URL comes back
// as the empty string, which callers treat as "no image available".
func absoluteURL(base, ref string) string {
	if ref == "" {
		return ""
	}
	b, err := url.Parse(base)
	if err != nil {
		return ""
	}
	u, err := b.Parse(ref)
	if err != nil || !u.IsAbs() {
		return ""
	}
	return u.String()
}
