package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"forumfeed/internal/modkit/repokit"
	"forumfeed/internal/platform/clock"
	perr "forumfeed/internal/platform/errors"
	"forumfeed/internal/services/feed/domain"
	"forumfeed/internal/services/feed/repo"

	edom "forumfeed/internal/services/enrolments/domain"
	pdom "forumfeed/internal/services/profiles/domain"
)

type passTx struct{}

func (passTx) Exec(context.Context, string, ...any) (repokit.CommandTag, error) { return nil, nil }
func (passTx) Query(context.Context, string, ...any) (repokit.Rows, error)      { return nil, nil }
func (passTx) QueryRow(context.Context, string, ...any) repokit.Row             { return nil }
func (passTx) Tx(ctx context.Context, fn func(q repokit.Queryer) error) error   { return fn(nil) }

// fakeStorage scripts the feed repo
type fakeStorage struct {
	ids     []int64
	popular domain.PopularDiscussion
	hasPop  bool
	root    domain.Post
	recents []domain.Post
	err     error

	gotWindowStart int64
	gotExclude     int64
	gotLimit       int
}

func (f *fakeStorage) VisibleDiscussionIDs(
	_ context.Context, _ int64, _ []int64, _, windowStart int64,
) ([]int64, error) {
	f.gotWindowStart = windowStart
	return f.ids, f.err
}

func (f *fakeStorage) MostActive(
	_ context.Context, _ []int64, _ int64,
) (domain.PopularDiscussion, bool, error) {
	return f.popular, f.hasPop, f.err
}

func (f *fakeStorage) RootPost(_ context.Context, _ int64) (domain.Post, error) {
	return f.root, f.err
}

func (f *fakeStorage) RecentPosts(
	_ context.Context, _ []int64, _ int64, excludeAuthor int64, limit int,
) ([]domain.Post, error) {
	f.gotExclude = excludeAuthor
	f.gotLimit = limit
	return f.recents, f.err
}

type fakeCourses struct {
	courses []edom.Course
	err     error
}

func (f fakeCourses) CoursesForUser(context.Context, int64) ([]edom.Course, error) {
	return f.courses, f.err
}

type fakeRoles struct{ byUser map[int64][]string }

func (f fakeRoles) RoleNames(_ context.Context, userID, _ int64) ([]string, error) {
	return f.byUser[userID], nil
}

type fakeProfiles struct {
	byUser map[int64]pdom.Profile
	err    error
}

func (f fakeProfiles) Profile(_ context.Context, userID int64) (pdom.Profile, error) {
	if f.err != nil {
		return pdom.Profile{}, f.err
	}
	p, ok := f.byUser[userID]
	if !ok {
		return pdom.Profile{}, perr.NotFoundf("user %d", userID)
	}
	return p, nil
}

var testNow = time.Date(2026, 1, 9, 15, 4, 0, 0, time.UTC)

func newSvc(
	st *fakeStorage,
	courses fakeCourses,
	roles fakeRoles,
	profiles fakeProfiles,
	cfg Config,
) *Service {
	if cfg.PublicURL == "" {
		cfg.PublicURL = "https://moodle.example"
	}
	b := repokit.BindFunc[repo.Storage](func(repokit.Queryer) repo.Storage { return st })
	return New(passTx{}, b, courses, roles, profiles, clock.At(testNow), cfg)
}

func TestFeed_ZeroCoursesIsEmptyWithMessage(t *testing.T) {
	svc := newSvc(&fakeStorage{}, fakeCourses{}, fakeRoles{}, fakeProfiles{}, Config{})

	got, err := svc.Feed(context.Background(), domain.Request{UserID: 42})
	if err != nil {
		t.Fatalf("Feed: %v", err)
	}
	if len(got.Posts) != 0 {
		t.Fatalf("posts: %+v", got.Posts)
	}
	if got.NoPosts != "Posts from forums across your courses will be shown here." {
		t.Fatalf("noposts: %q", got.NoPosts)
	}
	if got.Title != "Forum activity" {
		t.Fatalf("title: %q", got.Title)
	}
}

func TestFeed_NoVisibleDiscussions(t *testing.T) {
	svc := newSvc(
		&fakeStorage{},
		fakeCourses{courses: []edom.Course{{ID: 7, FullName: "Biology 101"}}},
		fakeRoles{}, fakeProfiles{}, Config{},
	)

	got, err := svc.Feed(context.Background(), domain.Request{UserID: 42})
	if err != nil {
		t.Fatalf("Feed: %v", err)
	}
	if len(got.Posts) != 0 || got.NoPosts == "" {
		t.Fatalf("feed: %+v", got)
	}
}

func TestFeed_PopularFirstThenRecents(t *testing.T) {
	st := &fakeStorage{
		ids:     []int64{11, 12},
		hasPop:  true,
		popular: domain.PopularDiscussion{DiscussionID: 11, ForumID: 3, Replies: 5},
		root: domain.Post{
			ID: 101, DiscussionID: 11, AuthorID: 8,
			Subject:  "Week 3 reading",
			Modified: testNow.Add(-2 * time.Hour).Unix(),
			CourseID: 7, CourseName: "Biology 101",
			CourseImage: "https://cdn.example/bio.jpg", ForumName: "Announcements",
		},
		recents: []domain.Post{
			{
				ID: 103, DiscussionID: 12, AuthorID: 9,
				Subject:  "Re: Lab results",
				Modified: testNow.Add(-150 * time.Second).Unix(),
				CourseID: 7, CourseName: "Biology 101", ForumName: "General",
			},
		},
	}
	svc := newSvc(
		st,
		fakeCourses{courses: []edom.Course{{ID: 7, FullName: "Biology 101"}}},
		fakeRoles{byUser: map[int64][]string{
			8: {"Teacher", "Student"},
			9: {"Student"},
		}},
		fakeProfiles{byUser: map[int64]pdom.Profile{
			8: {UserID: 8, FullName: "Ada Lovelace", AvatarURL: "https://moodle.example/a/8"},
			9: {UserID: 9, FullName: "Grace Hopper", AvatarURL: "https://moodle.example/a/9"},
		}},
		Config{},
	)

	got, err := svc.Feed(context.Background(), domain.Request{UserID: 42})
	if err != nil {
		t.Fatalf("Feed: %v", err)
	}
	if got.NoPosts != "" {
		t.Fatalf("noposts set: %q", got.NoPosts)
	}
	if len(got.Posts) != 2 {
		t.Fatalf("got %d posts, want 2", len(got.Posts))
	}

	pop := got.Posts[0]
	if pop.Title != "Week 3 reading" || pop.Forum != "Announcements" {
		t.Fatalf("popular slot: %+v", pop)
	}
	if pop.PostsThisWeek == nil || *pop.PostsThisWeek != 5 {
		t.Fatalf("poststhisweek: %v", pop.PostsThisWeek)
	}
	if pop.Date != "1:04pm · 9th January" {
		t.Fatalf("popular date: %q", pop.Date)
	}
	if pop.URL != "https://moodle.example/mod/forum/discuss.php?d=11#p101" {
		t.Fatalf("popular url: %q", pop.URL)
	}
	if pop.Username != "Ada Lovelace" || pop.Role != "Teacher" {
		t.Fatalf("popular author: %+v", pop)
	}

	rec := got.Posts[1]
	if rec.Title != "Lab results" {
		t.Fatalf("recent title not cleaned: %q", rec.Title)
	}
	if rec.Date != "3 minutes ago" {
		t.Fatalf("recent date: %q", rec.Date)
	}
	if rec.PostsThisWeek != nil {
		t.Fatal("recent slot must not carry poststhisweek")
	}
	if rec.Role != "" {
		t.Fatalf("student role leaked: %q", rec.Role)
	}

	if st.gotExclude != 42 {
		t.Fatalf("exclude author: %d", st.gotExclude)
	}
	if st.gotLimit != 6 {
		t.Fatalf("default limit: %d", st.gotLimit)
	}
	wantWindow := testNow.Add(-7 * 24 * time.Hour).Unix()
	if st.gotWindowStart != wantWindow {
		t.Fatalf("window start: got %d want %d", st.gotWindowStart, wantWindow)
	}
}

func TestFeed_LimitClamps(t *testing.T) {
	st := &fakeStorage{ids: []int64{11}}
	svc := newSvc(
		st,
		fakeCourses{courses: []edom.Course{{ID: 7}}},
		fakeRoles{}, fakeProfiles{}, Config{},
	)

	if _, err := svc.Feed(context.Background(), domain.Request{UserID: 42, Limit: 3}); err != nil {
		t.Fatalf("Feed: %v", err)
	}
	if st.gotLimit != 3 {
		t.Fatalf("limit: %d", st.gotLimit)
	}

	if _, err := svc.Feed(context.Background(), domain.Request{UserID: 42, Limit: 99}); err != nil {
		t.Fatalf("Feed: %v", err)
	}
	if st.gotLimit != 24 {
		t.Fatalf("clamped limit: %d", st.gotLimit)
	}
}

func TestFeed_WelshLocale(t *testing.T) {
	svc := newSvc(&fakeStorage{}, fakeCourses{}, fakeRoles{}, fakeProfiles{}, Config{})

	got, err := svc.Feed(context.Background(), domain.Request{UserID: 42, Lang: "cy"})
	if err != nil {
		t.Fatalf("Feed: %v", err)
	}
	if got.Title != "Gweithgarwch fforwm" {
		t.Fatalf("title: %q", got.Title)
	}
}

func TestFeed_TitleOverride(t *testing.T) {
	svc := newSvc(&fakeStorage{}, fakeCourses{}, fakeRoles{}, fakeProfiles{}, Config{Title: "Class chatter"})

	got, err := svc.Feed(context.Background(), domain.Request{UserID: 42})
	if err != nil {
		t.Fatalf("Feed: %v", err)
	}
	if got.Title != "Class chatter" {
		t.Fatalf("title: %q", got.Title)
	}
}

func TestFeed_MissingAuthorIsFatal(t *testing.T) {
	st := &fakeStorage{
		ids:     []int64{12},
		recents: []domain.Post{{ID: 103, DiscussionID: 12, AuthorID: 9, Modified: testNow.Unix()}},
	}
	svc := newSvc(
		st,
		fakeCourses{courses: []edom.Course{{ID: 7}}},
		fakeRoles{}, fakeProfiles{}, Config{},
	)

	_, err := svc.Feed(context.Background(), domain.Request{UserID: 42})
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestFeed_RepoErrorPropagates(t *testing.T) {
	st := &fakeStorage{err: errors.New("boom")}
	svc := newSvc(
		st,
		fakeCourses{courses: []edom.Course{{ID: 7}}},
		fakeRoles{}, fakeProfiles{}, Config{},
	)

	if _, err := svc.Feed(context.Background(), domain.Request{UserID: 42}); err == nil {
		t.Fatal("want error")
	}
}

func TestFeed_CoursesErrorPropagates(t *testing.T) {
	svc := newSvc(&fakeStorage{}, fakeCourses{err: errors.New("boom")}, fakeRoles{}, fakeProfiles{}, Config{})

	if _, err := svc.Feed(context.Background(), domain.Request{UserID: 42}); err == nil {
		t.Fatal("want error")
	}
}
