// Package service implements the feed selection and formatting pipeline
package service

import (
	"context"
	"time"

	"forumfeed/internal/core/feedtime"
	"forumfeed/internal/core/lang"
	"forumfeed/internal/core/postfmt"
	"forumfeed/internal/core/rolelabel"
	"forumfeed/internal/modkit/repokit"
	"forumfeed/internal/platform/clock"
	"forumfeed/internal/services/feed/domain"
	"forumfeed/internal/services/feed/repo"

	edom "forumfeed/internal/services/enrolments/domain"
	pdom "forumfeed/internal/services/profiles/domain"
)

// Config for the feed service
type Config struct {
	// Window is the trailing activity window; defaults to 7 days
	Window time.Duration

	// RecentLimit bounds the recency slots; defaults to 6, clamps to 1..24
	RecentLimit int

	// PublicURL is the externally visible base used for permalinks
	PublicURL string

	// Title overrides the localized feed title when set
	Title string
}

const (
	defaultWindow      = 7 * 24 * time.Hour
	defaultRecentLimit = 6
	maxRecentLimit     = 24
)

// Service implements domain.FeedPort
type Service struct {
	DB       repokit.TxRunner
	Binder   repokit.Binder[repo.Storage]
	Courses  edom.CoursesPort
	Roles    edom.RolesPort
	Profiles pdom.ReaderPort
	Clock    clock.Clock
	Cfg      Config
}

// New constructs a new feed service
func New(
	db repokit.TxRunner,
	b repokit.Binder[repo.Storage],
	courses edom.CoursesPort,
	roles edom.RolesPort,
	profiles pdom.ReaderPort,
	clk clock.Clock,
	cfg Config,
) *Service {
	if cfg.Window <= 0 {
		cfg.Window = defaultWindow
	}
	if cfg.RecentLimit <= 0 {
		cfg.RecentLimit = defaultRecentLimit
	}
	if cfg.RecentLimit > maxRecentLimit {
		cfg.RecentLimit = maxRecentLimit
	}
	if clk == nil {
		clk = clock.System{}
	}
	return &Service{
		DB: db, Binder: b,
		Courses: courses, Roles: roles, Profiles: profiles,
		Clock: clk, Cfg: cfg,
	}
}

// Feed implements domain.FeedPort
func (s *Service) Feed(ctx context.Context, req domain.Request) (domain.Feed, error) {
	loc := lang.Match(req.Lang)
	feed := domain.Feed{Title: s.title(loc)}

	courses, err := s.Courses.CoursesForUser(ctx, req.UserID)
	if err != nil {
		return domain.Feed{}, err
	}
	if len(courses) == 0 {
		feed.NoPosts = loc.T(lang.KeyNoPosts)
		return feed, nil
	}

	courseIDs := make([]int64, len(courses))
	for i, c := range courses {
		courseIDs[i] = c.ID
	}

	now := s.Clock.Now()
	windowStart := now.Add(-s.Cfg.Window).Unix()

	var (
		root    domain.Post
		popular domain.PopularDiscussion
		hasPop  bool
		recents []domain.Post
	)
	err = s.DB.Tx(ctx, func(q repokit.Queryer) error {
		st := s.Binder.Bind(q)

		ids, err := st.VisibleDiscussionIDs(ctx, req.UserID, courseIDs, now.Unix(), windowStart)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}

		popular, hasPop, err = st.MostActive(ctx, ids, windowStart)
		if err != nil {
			return err
		}
		if hasPop {
			if root, err = st.RootPost(ctx, popular.DiscussionID); err != nil {
				return err
			}
		}

		recents, err = st.RecentPosts(ctx, ids, windowStart, req.UserID, s.limit(req.Limit))
		return err
	})
	if err != nil {
		return domain.Feed{}, err
	}

	if hasPop {
		slot, err := s.display(ctx, root, loc, feedtime.Absolute(time.Unix(root.Modified, 0).UTC()))
		if err != nil {
			return domain.Feed{}, err
		}
		replies := popular.Replies
		slot.PostsThisWeek = &replies
		feed.Posts = append(feed.Posts, slot)
	}
	for _, p := range recents {
		slot, err := s.display(ctx, p, loc, feedtime.Relative(now.Sub(time.Unix(p.Modified, 0)), loc))
		if err != nil {
			return domain.Feed{}, err
		}
		feed.Posts = append(feed.Posts, slot)
	}

	if len(feed.Posts) == 0 {
		feed.NoPosts = loc.T(lang.KeyNoPosts)
	}
	return feed, nil
}

func (s *Service) title(loc lang.Localizer) string {
	if s.Cfg.Title != "" {
		return s.Cfg.Title
	}
	return loc.T(lang.KeyPluginName)
}

func (s *Service) limit(reqLimit int) int {
	if reqLimit <= 0 {
		return s.Cfg.RecentLimit
	}
	if reqLimit > maxRecentLimit {
		return maxRecentLimit
	}
	return reqLimit
}

// display shapes one post row into a feed slot
func (s *Service) display(
	ctx context.Context,
	p domain.Post,
	loc lang.Localizer,
	date string,
) (domain.DisplayPost, error) {
	prof, err := s.Profiles.Profile(ctx, p.AuthorID)
	if err != nil {
		return domain.DisplayPost{}, err
	}
	roles, err := s.Roles.RoleNames(ctx, p.AuthorID, p.CourseID)
	if err != nil {
		return domain.DisplayPost{}, err
	}

	return domain.DisplayPost{
		Course:      p.CourseName,
		CourseImage: p.CourseImage,
		Forum:       p.ForumName,
		Title:       postfmt.CleanTitle(p.Subject),
		URL:         postfmt.DiscussURL(s.Cfg.PublicURL, p.DiscussionID, p.ID),
		Date:        date,
		Username:    prof.FullName,
		Img:         prof.AvatarURL,
		Role:        rolelabel.First(roles),
	}, nil
}
