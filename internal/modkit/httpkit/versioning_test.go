package httpkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	phttp "forumfeed/internal/platform/net/http"
	"forumfeed/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func TestMountAPIV1_RoutesUnderPrefix(t *testing.T) {
	root := phttp.AdaptChi(chi.NewRouter())

	MountAPIV1(root, nil, func(api Router) {
		Get(api, "/meta", func(r *http.Request) (any, error) {
			return map[string]string{"name": "forumfeed"}, nil
		})
	})

	rec := httptest.NewRecorder()
	root.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/meta", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	testkit.MustContain(t, rec.Body.String(), "forumfeed")

	rec = httptest.NewRecorder()
	root.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/meta", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unprefixed path status = %d, want 404", rec.Code)
	}
}

func TestMountAPI_StripsLeadingSlashInVersion(t *testing.T) {
	root := phttp.AdaptChi(chi.NewRouter())

	MountAPI(root, "/v2", nil, func(api Router) {
		Get(api, "/meta", func(r *http.Request) (any, error) { return "ok", nil })
	})

	rec := httptest.NewRecorder()
	root.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v2/meta", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}
