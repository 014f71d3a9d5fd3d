package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/naveenspark/phawse/internal/board"
)

// listModel shows the rendered comment list with a selection cursor.
type listModel struct {
	view   board.RenderResult
	cursor int
	width  int
	height int
}

func (l listModel) setView(v board.RenderResult) listModel {
	l.view = v
	if l.cursor >= len(v.Nodes) {
		l.cursor = max(len(v.Nodes)-1, 0)
	}
	return l
}

func (l listModel) down() listModel {
	if l.cursor < len(l.view.Nodes)-1 {
		l.cursor++
	}
	return l
}

func (l listModel) up() listModel {
	if l.cursor > 0 {
		l.cursor--
	}
	return l
}

func (l listModel) selected() (board.Node, bool) {
	if l.cursor < 0 || l.cursor >= len(l.view.Nodes) {
		return board.Node{}, false
	}
	return l.view.Nodes[l.cursor], true
}

func (l listModel) View(focused bool) string {
	var b strings.Builder

	if l.view.Empty {
		b.WriteString("\n " + dimStyle.Render("No comments yet. Be the first to share your thoughts!") + "\n")
		return b.String()
	}

	bodyWidth := l.width - 6
	if bodyWidth < 20 {
		bodyWidth = 20
	}

	var lines []string
	selStart, selEnd := 0, 0
	for i, n := range l.view.Nodes {
		active := focused && i == l.cursor
		cursor := "  "
		if active {
			cursor = accentStyle.Render("▸") + " "
		}
		header := fmt.Sprintf(" %s%s  %s",
			cursor,
			authorStyle.Render(truncStr(TerminalSafe(n.RawAuthor), 40)),
			commentTimeStyle.Render(n.Time),
		)
		if i == l.cursor {
			selStart = len(lines)
		}
		lines = append(lines, header)

		wrapped := lipgloss.NewStyle().Width(bodyWidth).Render(TerminalSafe(n.RawText))
		for _, line := range strings.Split(wrapped, "\n") {
			text := commentTextStyle.Render(line)
			if active {
				text = selectedRowBg.Render(text)
			}
			lines = append(lines, "    "+text)
		}
		lines = append(lines, "")
		if i == l.cursor {
			selEnd = len(lines)
		}
	}

	// Keep the selected comment in view.
	height := l.height
	if height <= 0 || height >= len(lines) {
		return strings.Join(lines, "\n")
	}
	start := 0
	if selEnd > height {
		start = selEnd - height
	}
	if selStart < start {
		start = selStart
	}
	end := min(start+height, len(lines))
	return strings.Join(lines[start:end], "\n")
}
