package sharecard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const testOrigin = "https://example.org"

func metaServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchExtractsMetaRecord(t *testing.T) {
	srv := metaServer(t, http.StatusOK, `[
		{"type":"verse","text":"..."},
		{"type":"meta","title":"T","subtitle":"S","imageUrl":"/img.png"},
		{"type":"meta","title":"ignored"}
	]`)
	f := NewFetcher(srv.URL, time.Second)

	res := f.Fetch(context.Background(), "15-08-2024-EN.json", testOrigin)
	if !res.Found {
		t.Fatalf("Found = false, want true (err: %v)", res.Err)
	}
	if res.Meta.Title != "T" {
		t.Errorf("Title = %q, want %q", res.Meta.Title, "T")
	}
	if res.Meta.Subtitle != "S" {
		t.Errorf("Subtitle = %q, want %q", res.Meta.Subtitle, "S")
	}
	if res.Meta.ImageURL != testOrigin+"/img.png" {
		t.Errorf("ImageURL = %q, want %q", res.Meta.ImageURL, testOrigin+"/img.png")
	}
}

func TestFetchBadImageURLMeansNoImage(t *testing.T) {
	srv := metaServer(t, http.StatusOK, `[{"type":"meta","title":"T","imageUrl":"%zz"}]`)
	f := NewFetcher(srv.URL, time.Second)

	res := f.Fetch(context.Background(), "15-08-2024-EN.json", testOrigin)
	if !res.Found {
		t.Fatalf("Found = false, want true (err: %v)", res.Err)
	}
	if res.Meta.ImageURL != "" {
		t.Errorf("ImageURL = %q, want empty for unresolvable URL", res.Meta.ImageURL)
	}
}

func TestFetchNonOKStatus(t *testing.T) {
	srv := metaServer(t, http.StatusNotFound, "404: Not Found")
	f := NewFetcher(srv.URL, time.Second)

	res := f.Fetch(context.Background(), "99-99-9999-EN.json", testOrigin)
	if res.Found {
		t.Error("Found = true, want false for 404")
	}
	if res.Err == nil {
		t.Error("Err = nil, want status error")
	}
}

func TestFetchMalformedJSON(t *testing.T) {
	srv := metaServer(t, http.StatusOK, `{"not":"an array"`)
	f := NewFetcher(srv.URL, time.Second)

	if res := f.Fetch(context.Background(), "15-08-2024-EN.json", testOrigin); res.Found || res.Err == nil {
		t.Errorf("Found = %v, Err = %v; want not found with decode error", res.Found, res.Err)
	}
}

func TestFetchNoMetaRecord(t *testing.T) {
	srv := metaServer(t, http.StatusOK, `[{"type":"verse"},{"type":"song"}]`)
	f := NewFetcher(srv.URL, time.Second)

	if res := f.Fetch(context.Background(), "15-08-2024-EN.json", testOrigin); res.Found || res.Err == nil {
		t.Errorf("Found = %v, Err = %v; want not found with missing-record error", res.Found, res.Err)
	}
}

func TestFetchTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	f := NewFetcher(url, time.Second)
	res := f.Fetch(context.Background(), "15-08-2024-EN.json", testOrigin)
	if res.Found {
		t.Error("Found = true, want false for unreachable upstream")
	}
	if res.Err == nil {
		t.Error("Err = nil, want transport error")
	}
}
