// Package repo provides the enrolments repository implementation
package repo

import (
	"context"

	"forumfeed/internal/modkit/repokit"
	"forumfeed/internal/services/enrolments/domain"
)

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage defines the enrolments repository
type Storage interface {
	ActiveCourses(ctx context.Context, userID, now int64) ([]domain.Course, error)
	RoleNames(ctx context.Context, userID, courseID int64) ([]string, error)
}

// ActiveCourses implements Storage
//
// An enrolment counts only while status is active and now falls inside its
// start/end window; time_end = 0 means the enrolment never expires
func (s *pg) ActiveCourses(ctx context.Context, userID, now int64) ([]domain.Course, error) {
	const q = `
		SELECT c.id, c.fullname, c.shortname, COALESCE(c.image_url, '')
		FROM enrolments e
		JOIN courses c ON c.id = e.course_id
		WHERE e.user_id = $1
			AND e.status = 0
			AND (e.time_start = 0 OR e.time_start <= $2)
			AND (e.time_end = 0 OR e.time_end > $2)
		ORDER BY c.fullname ASC, c.id ASC`

	rows, err := s.q.Query(ctx, q, userID, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Course
	for rows.Next() {
		var c domain.Course
		if err := rows.Scan(&c.ID, &c.FullName, &c.ShortName, &c.ImageURL); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// RoleNames implements Storage
func (s *pg) RoleNames(ctx context.Context, userID, courseID int64) ([]string, error) {
	const q = `
		SELECT r.name
		FROM role_assignments ra
		JOIN roles r ON r.id = ra.role_id
		WHERE ra.user_id = $1 AND ra.course_id = $2
		ORDER BY r.sort_order ASC, r.id ASC`

	rows, err := s.q.Query(ctx, q, userID, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}
