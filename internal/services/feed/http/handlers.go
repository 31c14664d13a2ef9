// Package http provides http transport for the feed
package http

import (
	stdhttp "net/http"

	"forumfeed/internal/modkit/httpkit"
	"forumfeed/internal/services/feed/domain"
)

// Register mounts feed endpoints on the given router
func Register(r httpkit.Router, feed domain.FeedPort) {
	h := &handlers{feed: feed}
	httpkit.Get(r, "/", h.mine)
	httpkit.PostJSON[domain.FeedInput](r, "/", h.build)
}

type handlers struct{ feed domain.FeedPort }

// @Summary Dashboard feed for the requesting user
// @Tags Feed
// @Produce json
// @Success 200 {object} domain.Feed "ok"
// @Router /feed [get]
func (h *handlers) mine(r *stdhttp.Request) (any, error) {
	uid, err := httpkit.Requester(r)
	if err != nil {
		return nil, err
	}
	return h.feed.Feed(r.Context(), domain.Request{
		UserID: uid,
		Lang:   httpkit.Locale(r),
	})
}

// @Summary Dashboard feed for an explicit user
// @Tags Feed
// @Accept json
// @Produce json
// @Param payload body domain.FeedInput true "Query"
// @Success 200 {object} domain.Feed "ok"
// @Router /feed [post]
func (h *handlers) build(r *stdhttp.Request, in domain.FeedInput) (any, error) {
	lang := in.Lang
	if lang == "" {
		lang = httpkit.Locale(r)
	}
	return h.feed.Feed(r.Context(), domain.Request{
		UserID: in.UserID,
		Limit:  in.Limit,
		Lang:   lang,
	})
}
