// Package service provides the profiles service implementation
package service

import (
	"context"
	"fmt"
	"strings"

	"forumfeed/internal/core/postfmt"
	"forumfeed/internal/modkit/repokit"
	"forumfeed/internal/services/profiles/domain"
	"forumfeed/internal/services/profiles/repo"
)

// Config for the profiles service
type Config struct {
	// PublicURL is the externally visible base of the host site
	PublicURL string

	// AvatarSize is the requested thumbnail edge in pixels; defaults to 100
	AvatarSize int
}

// Service implements domain.ReaderPort
type Service struct {
	DB     repokit.TxRunner
	Binder repokit.Binder[repo.Storage]
	Cfg    Config
}

// New constructs a new profiles service
func New(db repokit.TxRunner, b repokit.Binder[repo.Storage], cfg Config) *Service {
	if cfg.AvatarSize <= 0 {
		cfg.AvatarSize = 100
	}
	return &Service{DB: db, Binder: b, Cfg: cfg}
}

// Profile implements domain.ReaderPort
func (s *Service) Profile(ctx context.Context, userID int64) (domain.Profile, error) {
	var u repo.UserRow
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		u, err = s.Binder.Bind(q).User(ctx, userID)
		return err
	})
	if err != nil {
		return domain.Profile{}, err
	}

	return domain.Profile{
		UserID:    u.ID,
		FullName:  postfmt.FullName(u.FirstName, u.LastName),
		AvatarURL: s.avatarURL(u.ID, u.PictureRev),
	}, nil
}

func (s *Service) avatarURL(userID, rev int64) string {
	base := strings.TrimRight(s.Cfg.PublicURL, "/")
	return fmt.Sprintf("%s/pluginfile.php/user/%d/icon?rev=%d&size=%d", base, userID, rev, s.Cfg.AvatarSize)
}
