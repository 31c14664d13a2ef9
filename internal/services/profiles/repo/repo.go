// Package repo provides the profiles repository implementation
package repo

import (
	"context"

	"forumfeed/internal/modkit/repokit"
	perr "forumfeed/internal/platform/errors"
)

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// UserRow is the raw identity record
type UserRow struct {
	ID         int64
	FirstName  string
	LastName   string
	PictureRev int64
}

// Storage defines the profiles repository
type Storage interface {
	User(ctx context.Context, userID int64) (UserRow, error)
}

// User implements Storage; a missing user is ErrorCodeNotFound
func (s *pg) User(ctx context.Context, userID int64) (UserRow, error) {
	const q = `SELECT id, firstname, lastname, picture FROM users WHERE id = $1`

	var u UserRow
	err := s.q.QueryRow(ctx, q, userID).Scan(&u.ID, &u.FirstName, &u.LastName, &u.PictureRev)
	if perr.IsNoRows(err) {
		return UserRow{}, perr.NotFoundf("user %d", userID)
	}
	if err != nil {
		return UserRow{}, err
	}
	return u, nil
}
