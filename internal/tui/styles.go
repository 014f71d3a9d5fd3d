package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Shimmer animation for the PHAWSE wordmark.
type shimmerTickMsg time.Time

func shimmerTickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return shimmerTickMsg(t)
	})
}

const logoText = "PHAWSE"

// renderShimmerLogo renders the spaced wordmark with a highlight that sweeps
// left to right and pauses off the edge before the next pass. Colors run
// from indigo (#4c3f91) to lavender (#a5b4fc).
func renderShimmerLogo(frame int) string {
	const (
		speed = 0.15 // letters per frame
		width = 1.1  // highlight spread, in letters
		pause = 4.0  // off-screen letters between sweeps
	)
	n := len(logoText)
	cycle := float64(n) + 2*pause
	head := math.Mod(float64(frame)*speed, cycle) - pause

	var b strings.Builder
	for i := 0; i < n; i++ {
		d := (float64(i) - head) / width
		glow := math.Exp(-d * d)
		lum := 0.2 + 0.8*glow

		color := fmt.Sprintf("#%02X%02X%02X",
			clampByte(76+lum*(165-76)),
			clampByte(63+lum*(180-63)),
			clampByte(145+lum*(252-145)),
		)
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color)).Render(logoText[i : i+1]))
		if i < n-1 {
			b.WriteString("  ")
		}
	}
	return b.String()
}

func clampByte(v float64) int {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return int(v)
}

var (
	// Base styles
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e4e4ec")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0c4d0"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	// Help bar
	helpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	helpLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#818cf8"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0")).
			Bold(true)

	// Comment list
	authorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a5b4fc")).
			Bold(true)

	commentTextStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#c0c4d0"))

	commentTimeStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#505868"))

	selectedRowBg = lipgloss.NewStyle().Background(lipgloss.Color("#1e1e2a"))

	// Form
	inputPromptStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#818cf8")).
				Bold(true)

	inputPlaceholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#343c4a"))

	charCountStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6b7080"))

	charWarnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff4757"))

	// Submit control, one style per button phase
	buttonReadyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#ffffff")).
				Background(lipgloss.Color("#667eea")).
				Bold(true).
				Padding(0, 2)

	buttonLockedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#f5c6cb")).
				Background(lipgloss.Color("#ff4757")).
				Faint(true).
				Padding(0, 2)

	buttonPostedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#ffffff")).
				Background(lipgloss.Color("#10b981")).
				Bold(true).
				Padding(0, 2)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#b45555"))
)

// helpEntry renders a single "key label" pair for help bars.
func helpEntry(key, label string) string {
	return helpKeyStyle.Render(key) + " " + helpLabelStyle.Render(label)
}

// helpView renders the keybinding overlay.
func helpView() string {
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a5b4fc")).
		Bold(true).
		Render("P H A W S E")

	keyStyle := lipgloss.NewStyle().Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	sectionStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)

	sections := []struct {
		name string
		keys []struct{ key, desc string }
	}{
		{"Compose", []struct{ key, desc string }{
			{"tab / shift+tab", "next / previous field"},
			{"enter", "post (text field or button)"},
			{"ctrl+s", "post from anywhere"},
			{"ctrl+u", "clear the field"},
			{"esc", "leave the form"},
		}},
		{"Browse", []struct{ key, desc string }{
			{"j / k", "move selection"},
			{"s", "toggle newest / oldest"},
			{"n / o", "newest / oldest first"},
			{"c", "copy selected comment"},
			{"r", "refresh"},
			{"i", "write a comment"},
			{"q", "quit"},
		}},
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n  %s\n\n", title)
	for _, sec := range sections {
		fmt.Fprintf(&b, "  %s\n", sectionStyle.Render(sec.name))
		for _, k := range sec.keys {
			fmt.Fprintf(&b, "    %s  %s\n", keyStyle.Render(fmt.Sprintf("%-16s", k.key)), descStyle.Render(k.desc))
		}
		b.WriteString("\n")
	}
	return b.String()
}
