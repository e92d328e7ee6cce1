package webtui

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewServerRequiresAddr(t *testing.T) {
	t.Parallel()

	if _, err := NewServer(ServerConfig{}); err == nil {
		t.Fatalf("expected an error for a missing addr")
	}
	if _, err := NewServer(ServerConfig{Addr: "   "}); err == nil {
		t.Fatalf("expected an error for a blank addr")
	}
}

func TestHandlerServesPickerPage(t *testing.T) {
	t.Parallel()

	srv, err := NewServer(ServerConfig{
		Addr:        "127.0.0.1:0",
		Locale:      "de-DE",
		Granularity: "second",
		Label:       "Start",
	})
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	h := srv.Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/picker" {
		t.Fatalf("expected / to redirect to /picker; got %d %q", rec.Code, rec.Header().Get("Location"))
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/picker", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for /picker; got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"timefield", "de-DE", "second", "Start"} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected picker page to mention %q:\n%s", want, body)
		}
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/app.js", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for app.js; got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/javascript") {
		t.Fatalf("expected a javascript content type; got %q", ct)
	}
}
