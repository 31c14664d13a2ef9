package domain

import "context"

// FeedPort builds the dashboard feed for one user
type FeedPort interface {
	Feed(ctx context.Context, req Request) (Feed, error)
}
