package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/naveenspark/phawse/pkg/domain"
)

// Persisted keys.
const (
	CommentsKey = "phawse_comments"
	LastPostKey = "phawse_last_post"
)

// Comments reads and writes the comment list and the last post time.
type Comments struct {
	kv KV
}

// NewComments returns a storage adapter over kv.
func NewComments(kv KV) *Comments {
	return &Comments{kv: kv}
}

// LoadComments returns every stored comment in storage order. A missing key
// yields an empty list. A corrupt value is logged and treated as empty.
func (c *Comments) LoadComments(ctx context.Context) ([]domain.Comment, error) {
	comments, err := c.LoadCommentsStrict(ctx)
	if IsParseFailure(err) {
		slog.Warn("stored comments unreadable, treating as empty", "key", CommentsKey, "error", err)
		return []domain.Comment{}, nil
	}
	return comments, err
}

// LoadCommentsStrict is LoadComments without the fallback: a corrupt value
// is returned as a *ParseError.
func (c *Comments) LoadCommentsStrict(ctx context.Context) ([]domain.Comment, error) {
	raw, ok, err := c.kv.Get(ctx, CommentsKey)
	if err != nil {
		return nil, fmt.Errorf("load comments: %w", err)
	}
	if !ok || raw == "" {
		return []domain.Comment{}, nil
	}
	var comments []domain.Comment
	if err := json.Unmarshal([]byte(raw), &comments); err != nil {
		return nil, &ParseError{Key: CommentsKey, Err: err}
	}
	if comments == nil {
		comments = []domain.Comment{}
	}
	return comments, nil
}

// SaveComments overwrites the stored list. Last writer wins.
func (c *Comments) SaveComments(ctx context.Context, comments []domain.Comment) error {
	if comments == nil {
		comments = []domain.Comment{}
	}
	data, err := json.Marshal(comments)
	if err != nil {
		return fmt.Errorf("encode comments: %w", err)
	}
	if err := c.kv.Set(ctx, CommentsKey, string(data)); err != nil {
		return fmt.Errorf("save comments: %w", err)
	}
	return nil
}

// RecordPostTime persists the time of the latest successful post.
func (c *Comments) RecordPostTime(ctx context.Context, ms int64) error {
	if err := c.kv.Set(ctx, LastPostKey, strconv.FormatInt(ms, 10)); err != nil {
		return fmt.Errorf("record post time: %w", err)
	}
	return nil
}

// LastPostTime returns the persisted last post time. ok is false when no
// post was recorded or the value is not an integer.
func (c *Comments) LastPostTime(ctx context.Context) (ms int64, ok bool, err error) {
	raw, found, err := c.kv.Get(ctx, LastPostKey)
	if err != nil {
		return 0, false, fmt.Errorf("read post time: %w", err)
	}
	if !found {
		return 0, false, nil
	}
	ms, err = strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		slog.Warn("stored post time unreadable, ignoring", "key", LastPostKey, "value", raw)
		return 0, false, nil
	}
	return ms, true, nil
}
