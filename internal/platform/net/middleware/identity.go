package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"forumfeed/internal/platform/logger"
	pnet "forumfeed/internal/platform/net"
)

// headers the trusted host frontend forwards on behalf of the signed-in user
const (
	userIDHeader = "X-User-ID"
	localeHeader = "Accept-Language"
)

// Identity lifts the host-supplied user id and language preference onto the
// request context and installs a request scoped logger
// a missing or malformed user header is not an error here, handlers that need
// a requester reject the request themselves
func Identity() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			var uid int64
			if raw := strings.TrimSpace(r.Header.Get(userIDHeader)); raw != "" {
				if v, err := strconv.ParseInt(raw, 10, 64); err == nil && v > 0 {
					uid = v
					ctx = pnet.WithRequester(ctx, v)
				}
			}

			if pref := strings.TrimSpace(r.Header.Get(localeHeader)); pref != "" {
				ctx = pnet.WithLocale(ctx, pref)
			}

			uidStr := ""
			if uid > 0 {
				uidStr = strconv.FormatInt(uid, 10)
			}
			ctx = logger.WithRequest(ctx, pnet.RequestID(ctx), uidStr)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
