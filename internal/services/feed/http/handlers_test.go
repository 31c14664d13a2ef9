package http

import (
	"context"
	"encoding/json"
	"io"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	pnet "forumfeed/internal/platform/net"
	phttp "forumfeed/internal/platform/net/http"
	"forumfeed/internal/services/feed/domain"
)

// fakeFeed records the request it was asked to build
type fakeFeed struct {
	got  domain.Request
	feed domain.Feed
	err  error
}

func (f *fakeFeed) Feed(_ context.Context, req domain.Request) (domain.Feed, error) {
	f.got = req
	return f.feed, f.err
}

func mount(f *fakeFeed) phttp.Router {
	r := phttp.AdaptChi(chi.NewRouter())
	Register(r, f)
	return r
}

func do(r phttp.Router, req *stdhttp.Request) (int, string) {
	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, req)
	res := rec.Result()
	defer func() { _ = res.Body.Close() }()
	b, _ := io.ReadAll(res.Body)
	return rec.Code, string(b)
}

func TestGet_UsesIdentityFromContext(t *testing.T) {
	f := &fakeFeed{feed: domain.Feed{Title: "Forum activity"}}
	r := mount(f)

	req := httptest.NewRequest(stdhttp.MethodGet, "/", nil)
	ctx := pnet.WithRequester(req.Context(), 42)
	ctx = pnet.WithLocale(ctx, "cy")

	code, body := do(r, req.WithContext(ctx))
	if code != stdhttp.StatusOK {
		t.Fatalf("status = %d, body %s", code, body)
	}
	if f.got.UserID != 42 || f.got.Lang != "cy" {
		t.Fatalf("request: %+v", f.got)
	}
	if !strings.Contains(body, `"title":"Forum activity"`) {
		t.Fatalf("body = %s", body)
	}
}

func TestGet_MissingIdentityIsUnauthorized(t *testing.T) {
	f := &fakeFeed{}
	r := mount(f)

	code, _ := do(r, httptest.NewRequest(stdhttp.MethodGet, "/", nil))
	if code != stdhttp.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", code)
	}
}

func TestPost_ValidBody(t *testing.T) {
	f := &fakeFeed{feed: domain.Feed{Title: "Forum activity"}}
	r := mount(f)

	req := httptest.NewRequest(
		stdhttp.MethodPost, "/",
		strings.NewReader(`{"user_id": 42, "limit": 3, "lang": "cy"}`),
	)
	req.Header.Set("Content-Type", "application/json")

	code, body := do(r, req)
	if code != stdhttp.StatusOK {
		t.Fatalf("status = %d, body %s", code, body)
	}
	if f.got.UserID != 42 || f.got.Limit != 3 || f.got.Lang != "cy" {
		t.Fatalf("request: %+v", f.got)
	}
}

func TestPost_LangFallsBackToHeaderLocale(t *testing.T) {
	f := &fakeFeed{}
	r := mount(f)

	req := httptest.NewRequest(stdhttp.MethodPost, "/", strings.NewReader(`{"user_id": 42}`))
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(pnet.WithLocale(req.Context(), "cy"))

	code, _ := do(r, req)
	if code != stdhttp.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if f.got.Lang != "cy" {
		t.Fatalf("lang: %q", f.got.Lang)
	}
}

func TestPost_MissingUserFailsValidation(t *testing.T) {
	f := &fakeFeed{}
	r := mount(f)

	req := httptest.NewRequest(stdhttp.MethodPost, "/", strings.NewReader(`{"limit": 3}`))
	req.Header.Set("Content-Type", "application/json")

	code, body := do(r, req)
	if code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, body %s", code, body)
	}

	var env phttp.Envelope
	if err := json.Unmarshal([]byte(body), &env); err != nil {
		t.Fatalf("envelope: %v", err)
	}
	if env.StatusCode != stdhttp.StatusBadRequest || env.Error == "" {
		t.Fatalf("envelope: %+v", env)
	}
}

func TestPost_LimitOverMaxFailsValidation(t *testing.T) {
	f := &fakeFeed{}
	r := mount(f)

	req := httptest.NewRequest(
		stdhttp.MethodPost, "/",
		strings.NewReader(`{"user_id": 42, "limit": 99}`),
	)
	req.Header.Set("Content-Type", "application/json")

	code, _ := do(r, req)
	if code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", code)
	}
}
