// Package repo provides the feed repository implementation
package repo

import (
	"context"

	"forumfeed/internal/modkit/repokit"
	perr "forumfeed/internal/platform/errors"
	"forumfeed/internal/services/feed/domain"
)

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the feed repository
type Storage interface {
	VisibleDiscussionIDs(ctx context.Context, userID int64, courseIDs []int64, now, windowStart int64) ([]int64, error)
	MostActive(ctx context.Context, discussionIDs []int64, windowStart int64) (domain.PopularDiscussion, bool, error)
	RootPost(ctx context.Context, discussionID int64) (domain.Post, error)
	RecentPosts(
		ctx context.Context,
		discussionIDs []int64,
		windowStart int64,
		excludeAuthor int64,
		limit int,
	) ([]domain.Post, error)
}

// postColumns is the shared select list for post rows with context
const postColumns = `
	p.id, p.discussion_id, p.author_id, p.subject, p.modified, p.parent_id,
	d.course_id, c.fullname, COALESCE(c.image_url, ''), f.name`

// VisibleDiscussionIDs implements Storage
//
// A discussion is visible when its course module is visible, its publication
// window covers now (time_end = 0 means unbounded), and the group gate passes:
// unrestricted (-1), member, or the user may access all groups in the course
func (s *pg) VisibleDiscussionIDs(
	ctx context.Context,
	userID int64,
	courseIDs []int64,
	now, windowStart int64,
) ([]int64, error) {
	if len(courseIDs) == 0 {
		return nil, nil
	}

	const q = `
		SELECT d.id
		FROM discussions d
		JOIN forums f ON f.id = d.forum_id
		JOIN course_modules cm ON cm.course_id = d.course_id
			AND cm.instance_id = f.id AND cm.module = 'forum'
		WHERE d.course_id = ANY($1)
			AND cm.visible = 1
			AND d.time_modified > $2
			AND d.time_start <= $3
			AND (d.time_end = 0 OR d.time_end > $3)
			AND (
				d.group_id = -1
				OR EXISTS (
					SELECT 1 FROM group_members gm
					WHERE gm.group_id = d.group_id AND gm.user_id = $4
				)
				OR EXISTS (
					SELECT 1 FROM user_capabilities uc
					WHERE uc.user_id = $4 AND uc.course_id = d.course_id
						AND uc.capability = 'accessallgroups'
				)
			)
		ORDER BY d.id ASC`

	rows, err := s.q.Query(ctx, q, courseIDs, windowStart, now, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

// MostActive implements Storage; ok is false when no discussion has posts
// inside the window
func (s *pg) MostActive(
	ctx context.Context,
	discussionIDs []int64,
	windowStart int64,
) (domain.PopularDiscussion, bool, error) {
	if len(discussionIDs) == 0 {
		return domain.PopularDiscussion{}, false, nil
	}

	const q = `
		SELECT d.id, d.forum_id, COUNT(p.id) AS posts
		FROM posts p
		JOIN discussions d ON d.id = p.discussion_id
		WHERE p.discussion_id = ANY($1) AND p.modified > $2
		GROUP BY d.id, d.forum_id
		ORDER BY posts DESC, d.id ASC
		LIMIT 1`

	rows, err := s.q.Query(ctx, q, discussionIDs, windowStart)
	if err != nil {
		return domain.PopularDiscussion{}, false, err
	}
	defer rows.Close()

	if !rows.Next() {
		return domain.PopularDiscussion{}, false, rows.Err()
	}
	var pop domain.PopularDiscussion
	if err := rows.Scan(&pop.DiscussionID, &pop.ForumID, &pop.Replies); err != nil {
		return domain.PopularDiscussion{}, false, err
	}
	return pop, true, rows.Err()
}

// RootPost implements Storage; the opening post carries the discussion title
func (s *pg) RootPost(ctx context.Context, discussionID int64) (domain.Post, error) {
	const q = `
		SELECT ` + postColumns + `
		FROM posts p
		JOIN discussions d ON d.id = p.discussion_id
		JOIN forums f ON f.id = d.forum_id
		JOIN courses c ON c.id = d.course_id
		WHERE p.discussion_id = $1 AND p.parent_id = 0
		ORDER BY p.id ASC
		LIMIT 1`

	var p domain.Post
	err := s.q.QueryRow(ctx, q, discussionID).Scan(
		&p.ID, &p.DiscussionID, &p.AuthorID, &p.Subject, &p.Modified, &p.ParentID,
		&p.CourseID, &p.CourseName, &p.CourseImage, &p.ForumName,
	)
	if perr.IsNoRows(err) {
		return domain.Post{}, perr.NotFoundf("discussion %d has no root post", discussionID)
	}
	if err != nil {
		return domain.Post{}, err
	}
	return p, nil
}

// RecentPosts implements Storage; the requester's own posts are excluded
func (s *pg) RecentPosts(
	ctx context.Context,
	discussionIDs []int64,
	windowStart int64,
	excludeAuthor int64,
	limit int,
) ([]domain.Post, error) {
	if len(discussionIDs) == 0 || limit <= 0 {
		return nil, nil
	}

	const q = `
		SELECT ` + postColumns + `
		FROM posts p
		JOIN discussions d ON d.id = p.discussion_id
		JOIN forums f ON f.id = d.forum_id
		JOIN courses c ON c.id = d.course_id
		WHERE p.discussion_id = ANY($1)
			AND p.modified > $2
			AND p.author_id != $3
		ORDER BY p.modified DESC, p.id DESC
		LIMIT $4`

	rows, err := s.q.Query(ctx, q, discussionIDs, windowStart, excludeAuthor, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Post, 0, limit)
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(
			&p.ID, &p.DiscussionID, &p.AuthorID, &p.Subject, &p.Modified, &p.ParentID,
			&p.CourseID, &p.CourseName, &p.CourseImage, &p.ForumName,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
