package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/naveenspark/phawse/internal/board"
	"github.com/naveenspark/phawse/internal/cooldown"
	"github.com/naveenspark/phawse/internal/tui"
)

// Styles for plain CLI output. lipgloss drops the colors itself when stdout
// is not a terminal.
var (
	cliTitle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#a78bfa")).Bold(true)
	cliAuthor = lipgloss.NewStyle().Bold(true)
	cliDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	cliOK     = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ade80")).Bold(true)
	cliWarn   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f59e0b"))
)

const emptyStateText = "No comments yet. Be the first to share your thoughts!"

func printList(w io.Writer, view board.RenderResult) {
	fmt.Fprintf(w, "%s %s\n", cliTitle.Render("Comments"), cliDim.Render(view.CountLabel))
	if view.Empty {
		fmt.Fprintf(w, "\n  %s\n", cliDim.Render(emptyStateText))
		return
	}
	for _, n := range view.Nodes {
		fmt.Fprintf(w, "\n  %s %s\n", cliAuthor.Render(tui.TerminalSafe(n.RawAuthor)), cliDim.Render("· "+n.Time))
		for _, line := range strings.Split(tui.TerminalSafe(n.RawText), "\n") {
			fmt.Fprintf(w, "    %s\n", line)
		}
	}
}

func printPosted(w io.Writer, res board.SubmitResult) {
	fmt.Fprintf(w, "%s %s %s\n",
		cliOK.Render(cooldown.PostedLabel),
		cliAuthor.Render(tui.TerminalSafe(res.Comment.Author)),
		cliDim.Render("comments "+res.View.CountLabel),
	)
}

func printButtonState(w io.Writer, st cooldown.ButtonState) {
	if st.Disabled {
		fmt.Fprintln(w, cliWarn.Render(st.Label))
		return
	}
	fmt.Fprintln(w, cliOK.Render(st.Label))
}
