// Package service provides the enrolments service implementation
package service

import (
	"context"

	"forumfeed/internal/modkit/repokit"
	"forumfeed/internal/platform/clock"
	"forumfeed/internal/services/enrolments/domain"
	"forumfeed/internal/services/enrolments/repo"
)

// Service implements domain.CoursesPort and domain.RolesPort
type Service struct {
	DB     repokit.TxRunner
	Binder repokit.Binder[repo.Storage]
	Clock  clock.Clock
}

// New constructs a new enrolments service
func New(db repokit.TxRunner, b repokit.Binder[repo.Storage], clk clock.Clock) *Service {
	if clk == nil {
		clk = clock.System{}
	}
	return &Service{DB: db, Binder: b, Clock: clk}
}

// CoursesForUser implements domain.CoursesPort
func (s *Service) CoursesForUser(ctx context.Context, userID int64) ([]domain.Course, error) {
	now := s.Clock.Now().Unix()

	var out []domain.Course
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		out, err = s.Binder.Bind(q).ActiveCourses(ctx, userID, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RoleNames implements domain.RolesPort
func (s *Service) RoleNames(ctx context.Context, userID, courseID int64) ([]string, error) {
	var out []string
	err := s.DB.Tx(ctx, func(q repokit.Queryer) error {
		var err error
		out, err = s.Binder.Bind(q).RoleNames(ctx, userID, courseID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
