package middleware

import (
	"net/http"
	"strings"

	pnet "forumfeed/internal/platform/net"

	"github.com/google/uuid"
)

// requestIDHeader is the correlation header read from and mirrored to clients
const requestIDHeader = "X-Request-ID"

// RequestID propagates an inbound X-Request-ID or mints a fresh uuid when absent
// the id is stored on the request context and mirrored on the response header
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(requestIDHeader))
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(requestIDHeader, id)
			ctx := pnet.WithRequestID(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
