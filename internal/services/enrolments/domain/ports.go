package domain

import "context"

// CoursesPort answers which courses a user can currently see
type CoursesPort interface {
	CoursesForUser(ctx context.Context, userID int64) ([]Course, error)
}

// RolesPort answers which roles a user holds in a course, highest priority first
type RolesPort interface {
	RoleNames(ctx context.Context, userID, courseID int64) ([]string, error)
}
