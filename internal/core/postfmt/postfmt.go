// Package postfmt holds small pure helpers for presenting forum posts.
package postfmt

import (
	"fmt"
	"strings"
)

// replyPrefix is the subject prefix the forum prepends to replies
const replyPrefix = "Re: "

// CleanTitle strips a single reply prefix from a post subject.
// Nested prefixes beyond the first are part of the written subject and stay.
func CleanTitle(subject string) string {
	return strings.TrimPrefix(subject, replyPrefix)
}

// DiscussURL builds the permalink for a post within its discussion thread
func DiscussURL(base string, discussionID, postID int64) string {
	return fmt.Sprintf("%s/mod/forum/discuss.php?d=%d#p%d",
		strings.TrimRight(base, "/"), discussionID, postID)
}

// FullName joins the author's name parts the way the feed displays them
func FullName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}
