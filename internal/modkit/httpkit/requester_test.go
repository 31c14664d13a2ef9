package httpkit

import (
	"net/http"
	"net/http/httptest"
	"testing"

	perrs "forumfeed/internal/platform/errors"
	pnet "forumfeed/internal/platform/net"
	"forumfeed/internal/platform/testkit"
)

func TestRequester_Present(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/feed", nil)
	req = req.WithContext(pnet.WithRequester(req.Context(), 42))

	uid, err := Requester(req)
	if err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if uid != 42 {
		t.Fatalf("uid = %d", uid)
	}
}

func TestRequester_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/feed", nil)
	_, err := Requester(req)
	if !perrs.IsCode(err, perrs.ErrorCodeUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestMustRequester_PanicsWhenMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/feed", nil)
	testkit.MustPanic(t, func() { MustRequester(req) })
}

func TestLocale(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/feed", nil)
	if got := Locale(req); got != "" {
		t.Fatalf("expected empty locale, got %q", got)
	}
	req = req.WithContext(pnet.WithLocale(req.Context(), "cy"))
	if got := Locale(req); got != "cy" {
		t.Fatalf("locale = %q", got)
	}
}
