package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	pnet "forumfeed/internal/platform/net"
)

func runIdentity(t *testing.T, set func(*http.Request)) (int64, string) {
	t.Helper()
	var uid int64
	var locale string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid = pnet.RequesterID(r.Context())
		locale = pnet.Locale(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/feed", nil)
	if set != nil {
		set(req)
	}
	Identity()(next).ServeHTTP(httptest.NewRecorder(), req)
	return uid, locale
}

func TestIdentity_LiftsUserAndLocale(t *testing.T) {
	uid, locale := runIdentity(t, func(r *http.Request) {
		r.Header.Set("X-User-ID", "42")
		r.Header.Set("Accept-Language", "cy, en;q=0.8")
	})
	if uid != 42 {
		t.Fatalf("requester = %d, want 42", uid)
	}
	if locale != "cy, en;q=0.8" {
		t.Fatalf("locale = %q", locale)
	}
}

func TestIdentity_AbsentHeaders(t *testing.T) {
	uid, locale := runIdentity(t, nil)
	if uid != 0 || locale != "" {
		t.Fatalf("expected zero identity, got uid=%d locale=%q", uid, locale)
	}
}

func TestIdentity_MalformedUserIgnored(t *testing.T) {
	for _, raw := range []string{"nope", "-3", "0", "9.5"} {
		uid, _ := runIdentity(t, func(r *http.Request) {
			r.Header.Set("X-User-ID", raw)
		})
		if uid != 0 {
			t.Fatalf("header %q: requester = %d, want 0", raw, uid)
		}
	}
}
