// Package domain defines the enrolments service types and ports
package domain

// Course is one course the user is actively enrolled in
type Course struct {
	ID        int64
	FullName  string
	ShortName string
	ImageURL  string
}
