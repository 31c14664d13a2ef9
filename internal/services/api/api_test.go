package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"forumfeed/internal/modkit/module"
	"forumfeed/internal/platform/config"
	phttp "forumfeed/internal/platform/net/http"
	"forumfeed/internal/platform/store"
	enrolmod "forumfeed/internal/services/enrolments/module"
	feedmod "forumfeed/internal/services/feed/module"
)

func mountTestAPI(t *testing.T) phttp.Router {
	t.Helper()
	t.Setenv("FEED_PUBLIC_URL", "https://moodle.example")
	module.Reset()

	r := phttp.AdaptChi(chi.NewRouter())
	Mount(r, Options{
		Config: config.New(),
		Store:  &store.Store{},
	})
	return r
}

func get(r phttp.Router, path string, hdr map[string]string) (int, string) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, req)
	res := rec.Result()
	defer func() { _ = res.Body.Close() }()
	b, _ := io.ReadAll(res.Body)
	return rec.Code, string(b)
}

func TestMount_MetaRoutes(t *testing.T) {
	r := mountTestAPI(t)

	code, body := get(r, "/api/v1/meta/health", nil)
	if code != http.StatusOK {
		t.Fatalf("health status = %d, body %s", code, body)
	}
	if !strings.Contains(body, `"service":"forumfeed-api"`) {
		t.Fatalf("health body = %s", body)
	}

	code, body = get(r, "/api/v1/meta/placement", nil)
	if code != http.StatusOK {
		t.Fatalf("placement status = %d", code)
	}
	if !strings.Contains(body, `"Forum activity"`) {
		t.Fatalf("placement body = %s", body)
	}
}

func TestMount_FeedRequiresIdentity(t *testing.T) {
	r := mountTestAPI(t)

	code, _ := get(r, "/api/v1/feed", nil)
	if code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", code)
	}
}

func TestMount_RegistersModulePorts(t *testing.T) {
	mountTestAPI(t)

	fp, ok := module.PortsAs[feedmod.Ports]("feed")
	if !ok || fp.Feed == nil {
		t.Fatal("feed ports not registered")
	}
	ep, ok := module.PortsAs[enrolmod.Ports]("enrolments")
	if !ok || ep.Courses == nil {
		t.Fatal("enrolments ports not registered")
	}
}

func TestMount_UnversionedPathIs404(t *testing.T) {
	r := mountTestAPI(t)

	code, _ := get(r, "/meta/health", nil)
	if code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", code)
	}
}
