package board

import (
	"context"
	"fmt"
	"html"
	"sort"
	"time"

	"github.com/naveenspark/phawse/internal/timefmt"
	"github.com/naveenspark/phawse/pkg/domain"
)

// Node is one comment projected for display. Author and Text are
// HTML-escaped and safe to embed as markup; RawAuthor and RawText are the
// stored values.
type Node struct {
	ID        string
	Author    string
	Time      string
	Text      string
	RawAuthor string
	RawText   string
	Timestamp int64
}

// RenderResult is the full display state of the board.
type RenderResult struct {
	Order      domain.SortOrder
	Count      int
	CountLabel string
	// Empty selects the empty-state indicator instead of the list.
	Empty bool
	Nodes []Node
}

// ShowList reports whether the list container should be visible.
func (r RenderResult) ShowList() bool {
	return !r.Empty
}

// Render loads every comment and projects it in order. It never writes.
func (b *Board) Render(ctx context.Context, order domain.SortOrder, now time.Time) (RenderResult, error) {
	comments, err := b.comments.LoadComments(ctx)
	if err != nil {
		return RenderResult{}, err
	}
	order = domain.ParseSortOrder(string(order))
	sortComments(comments, order)

	nowMs := now.UnixMilli()
	res := RenderResult{
		Order:      order,
		Count:      len(comments),
		CountLabel: fmt.Sprintf("(%d)", len(comments)),
		Empty:      len(comments) == 0,
		Nodes:      make([]Node, 0, len(comments)),
	}
	for _, c := range comments {
		res.Nodes = append(res.Nodes, Node{
			ID:        c.ID,
			Author:    html.EscapeString(c.Author),
			Time:      timefmt.FormatRelative(c.Timestamp, nowMs, b.dateLayout),
			Text:      html.EscapeString(c.Text),
			RawAuthor: c.Author,
			RawText:   c.Text,
			Timestamp: c.Timestamp,
		})
	}
	return res, nil
}

// sortComments orders by timestamp; ties keep their storage order.
func sortComments(comments []domain.Comment, order domain.SortOrder) {
	if order == domain.SortOldest {
		sort.SliceStable(comments, func(i, j int) bool {
			return comments[i].Timestamp < comments[j].Timestamp
		})
		return
	}
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].Timestamp > comments[j].Timestamp
	})
}
