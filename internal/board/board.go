package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/naveenspark/phawse/internal/cooldown"
	"github.com/naveenspark/phawse/internal/store"
	"github.com/naveenspark/phawse/pkg/domain"
)

// Submission rejections. Both leave storage untouched.
var (
	ErrCooldownActive = errors.New("cooldown active")
	ErrEmptyText      = errors.New("comment text is empty")
)

// Options tune a Board. Zero values use the defaults.
type Options struct {
	Cooldown   time.Duration
	DateLayout string
}

// Board is the comment board over one origin.
type Board struct {
	comments   *store.Comments
	cooldown   *cooldown.Controller
	dateLayout string
}

// New returns a Board reading and writing kv.
func New(kv store.KV, opts Options) *Board {
	comments := store.NewComments(kv)
	return &Board{
		comments:   comments,
		cooldown:   cooldown.New(comments, opts.Cooldown),
		dateLayout: opts.DateLayout,
	}
}

// Cooldown returns the board's cooldown controller.
func (b *Board) Cooldown() *cooldown.Controller {
	return b.cooldown
}

// Remaining returns the cooldown left at now.
func (b *Board) Remaining(ctx context.Context, now time.Time) (time.Duration, error) {
	return b.cooldown.Remaining(ctx, now)
}

// SubmitResult is a successful post and the list re-rendered after it.
type SubmitResult struct {
	Comment domain.Comment
	View    RenderResult
}

// Submit validates and appends a comment posted at now, records the post
// time, and re-renders in order. Rejections return ErrCooldownActive or
// ErrEmptyText without writing anything.
func (b *Board) Submit(ctx context.Context, author, text string, order domain.SortOrder, now time.Time) (SubmitResult, error) {
	remaining, err := b.cooldown.Remaining(ctx, now)
	if err != nil {
		return SubmitResult{}, err
	}
	if remaining > 0 {
		return SubmitResult{}, ErrCooldownActive
	}
	if strings.TrimSpace(text) == "" {
		return SubmitResult{}, ErrEmptyText
	}

	comments, err := b.comments.LoadComments(ctx)
	if err != nil {
		return SubmitResult{}, err
	}
	c := domain.NewComment(author, text, now.UnixMilli())
	comments = append(comments, c)
	if err := b.comments.SaveComments(ctx, comments); err != nil {
		return SubmitResult{}, err
	}
	if err := b.comments.RecordPostTime(ctx, c.Timestamp); err != nil {
		return SubmitResult{}, err
	}
	slog.Info("comment posted", "id", c.ID, "author", c.Author, "chars", len([]rune(c.Text)))

	view, err := b.Render(ctx, order, now)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("render after post: %w", err)
	}
	return SubmitResult{Comment: c, View: view}, nil
}
