// Package domain defines the profiles service types and ports
package domain

// Profile is the display identity of one user
type Profile struct {
	UserID    int64
	FullName  string
	AvatarURL string
}
