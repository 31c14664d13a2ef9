package httpkit

import (
	"net/http"

	perrs "forumfeed/internal/platform/errors"
	pnet "forumfeed/internal/platform/net"
)

// Requester returns the user id the feed is rendered for, from the request context
func Requester(r *http.Request) (int64, error) {
	uid := pnet.RequesterID(r.Context())
	if uid <= 0 {
		return 0, perrs.Unauthorizedf("missing user identity")
	}
	return uid, nil
}

// MustRequester returns the requesting user id or panics
// only use on routes behind the identity middleware
func MustRequester(r *http.Request) int64 {
	uid, err := Requester(r)
	if err != nil {
		panic(err)
	}
	return uid
}

// Locale returns the language preference forwarded by the host, may be empty
func Locale(r *http.Request) string {
	return pnet.Locale(r.Context())
}
