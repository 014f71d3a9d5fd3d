package board

import (
	"fmt"
	"html/template"
	"io"
)

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Comments {{.CountLabel}}</title>
</head>
<body>
<h2>Comments <span id="commentCount">{{.CountLabel}}</span></h2>
<p class="sort">Sorted by {{.Order}}</p>
{{if .Empty}}<div id="noComments">No comments yet. Be the first to share your thoughts!</div>
{{else}}<div id="commentsContainer">
{{range .Nodes}}<div class="comment" data-id="{{.ID}}">
<div class="comment-header">
<span class="comment-author">{{.Author}}</span>
<span class="comment-time">{{.Time}}</span>
</div>
<div class="comment-text">{{.Text}}</div>
</div>
{{end}}</div>
{{end}}</body>
</html>
`))

type pageNode struct {
	ID     string
	Author template.HTML
	Time   string
	Text   template.HTML
}

type pageData struct {
	CountLabel string
	Order      string
	Empty      bool
	Nodes      []pageNode
}

// WriteHTML writes r as a standalone HTML page. Node Author and Text are
// already escaped by Render and are embedded as-is.
func WriteHTML(w io.Writer, r RenderResult) error {
	data := pageData{
		CountLabel: r.CountLabel,
		Order:      r.Order.String(),
		Empty:      r.Empty,
		Nodes:      make([]pageNode, 0, len(r.Nodes)),
	}
	for _, n := range r.Nodes {
		data.Nodes = append(data.Nodes, pageNode{
			ID:     n.ID,
			Author: template.HTML(n.Author), //nolint:gosec // escaped in Render
			Time:   n.Time,
			Text:   template.HTML(n.Text), //nolint:gosec // escaped in Render
		})
	}
	if err := pageTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("write html: %w", err)
	}
	return nil
}
