package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	pnet "forumfeed/internal/platform/net"
)

func TestRecoverJSON_PanicBecomes500(t *testing.T) {
	h := RecoverJSON(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/feed", nil)
	req = req.WithContext(pnet.WithRequestID(req.Context(), "rid-1"))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if got := rec.Header().Get("X-Request-ID"); got != "rid-1" {
		t.Fatalf("X-Request-ID = %q, want rid-1", got)
	}

	var body panicWire
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if body.StatusCode != http.StatusInternalServerError || body.RequestID != "rid-1" {
		t.Fatalf("body = %+v", body)
	}
	if body.Error == "" {
		t.Fatal("expected error message in body")
	}
}

func TestRecoverJSON_NoPanicPassesThrough(t *testing.T) {
	h := RecoverJSON(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/feed", nil))

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
}
