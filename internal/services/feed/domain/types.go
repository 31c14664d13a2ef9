// Package domain defines the feed service types and ports
package domain

// Request selects whose feed to build and how
type Request struct {
	UserID int64

	// Limit bounds the recency slots; <= 0 means the configured default
	Limit int

	// Lang is a BCP 47 preference, empty means the fallback language
	Lang string
}

// FeedInput is the POST body form of a feed request
type FeedInput struct {
	UserID int64  `json:"user_id" validate:"required,min=1"`
	Limit  int    `json:"limit" validate:"min=0,max=24"`
	Lang   string `json:"lang" validate:"omitempty,bcp47_language_tag"`
}

// Post is a raw forum post row with its course and forum context
type Post struct {
	ID           int64
	DiscussionID int64
	AuthorID     int64
	Subject      string
	Modified     int64
	ParentID     int64

	CourseID    int64
	CourseName  string
	CourseImage string
	ForumName   string
}

// PopularDiscussion is the discussion with the most posts inside the window
type PopularDiscussion struct {
	DiscussionID int64
	ForumID      int64
	Replies      int64
}

// DisplayPost is one rendered feed slot; json names mirror the dashboard
// template contract
type DisplayPost struct {
	Course        string `json:"course"`
	CourseImage   string `json:"courseimage"`
	Forum         string `json:"forum"`
	Title         string `json:"title"`
	URL           string `json:"url"`
	Date          string `json:"date"`
	Username      string `json:"username"`
	Img           string `json:"img"`
	Role          string `json:"role,omitempty"`
	PostsThisWeek *int64 `json:"poststhisweek,omitempty"`
}

// Feed is the assembled dashboard payload
type Feed struct {
	Title   string        `json:"title"`
	Posts   []DisplayPost `json:"post"`
	NoPosts string        `json:"noposts,omitempty"`
}
