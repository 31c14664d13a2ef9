package domain

import "context"

// ReaderPort resolves user display identities
type ReaderPort interface {
	Profile(ctx context.Context, userID int64) (Profile, error)
}
