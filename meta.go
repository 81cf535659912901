package sharecard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// maxMetaBytes caps how much of an upstream document is read. Devotion
// documents are a few KB; anything past this is not a document we want.
const maxMetaBytes = 1 << 20

// DevotionMeta is the display metadata extracted from a devotion document.
// Empty fields mean the document did not provide a usable value.
type DevotionMeta struct {
	Title    string
	Subtitle string
	ImageURL string // absolute, or empty when missing/unresolvable
}

// FetchResult reports the outcome of a single metadata fetch. The handler
// collapses every non-Found case to default content, but keeping the reason
// around makes the fetcher testable on its own and lets callers log it.
type FetchResult struct {
	Meta  DevotionMeta
	Found bool
	Err   error
}

// Fetcher retrieves devotion documents from the content repository.
// A fetch is a single bounded GET: no retries, no local caching. CDN-level
// caching is handled by the Cache-Control header on the response instead.
type Fetcher struct {
	baseURL string
	client  *http.Client
}

// NewFetcher creates a Fetcher against the given content repository base URL.
func NewFetcher(baseURL string, timeout time.Duration) *Fetcher {
	return &Fetcher{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// metaRecord is one element of a devotion document. Documents are arrays of
// typed records; the one with type "meta" carries the share metadata.
type metaRecord struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	ImageURL string `json:"imageUrl"`
}

// Fetch retrieves the document named filename and extracts its meta record.
// A relative imageUrl is resolved against origin; resolution failure leaves
// the image empty. Every failure mode (transport, status, decode, no meta
// record) is reported through FetchResult rather than as a handler error.
func (f *Fetcher) Fetch(ctx context.Context, filename, origin string) FetchResult {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+"/"+filename, nil)
	if err != nil {
		return FetchResult{Err: fmt.Errorf("build request: %w", err)}
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return FetchResult{Err: fmt.Errorf("fetch %s: %w", filename, err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return FetchResult{Err: fmt.Errorf("fetch %s: unexpected status %d", filename, resp.StatusCode)}
	}

	var records []metaRecord
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxMetaBytes)).Decode(&records); err != nil {
		return FetchResult{Err: fmt.Errorf("decode %s: %w", filename, err)}
	}

	for _, rec := range records {
		if rec.Type != "meta" {
			continue
		}
		return FetchResult{
			Meta: DevotionMeta{
				Title:    rec.Title,
				Subtitle: rec.Subtitle,
				ImageURL: absoluteURL(origin, rec.ImageURL),
			},
			Found: true,
		}
	}
	return FetchResult{Err: errors.New("document has no meta record")}
}
