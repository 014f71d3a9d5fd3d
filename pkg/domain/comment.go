package domain

import (
	"strconv"
	"strings"
	"time"
)

// DefaultAuthor is shown for comments posted with a blank name.
const DefaultAuthor = "Anonymous"

// Input affordances. Neither limit is enforced by the store.
const (
	MaxTextLen   = 500
	WarnTextLen  = 450
	MaxAuthorLen = 50
)

// Comment is a single posted comment. Comments are never edited or deleted.
type Comment struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"` // unix milliseconds
}

// NewComment builds a comment posted at nowMs. The id is the stringified
// timestamp, so two comments created in the same millisecond collide.
func NewComment(author, text string, nowMs int64) Comment {
	author = strings.TrimSpace(author)
	if author == "" {
		author = DefaultAuthor
	}
	return Comment{
		ID:        strconv.FormatInt(nowMs, 10),
		Author:    author,
		Text:      strings.TrimSpace(text),
		Timestamp: nowMs,
	}
}

// Time returns the comment timestamp as a time.Time.
func (c Comment) Time() time.Time {
	return time.UnixMilli(c.Timestamp)
}
