package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/naveenspark/phawse/internal/board"
	"github.com/naveenspark/phawse/internal/cooldown"
	"github.com/naveenspark/phawse/pkg/domain"
)

// refreshInterval re-renders the list so relative times stay current.
const refreshInterval = 60 * time.Second

// -- messages --

type renderedMsg struct {
	view board.RenderResult
	err  error
}

type postedMsg struct {
	res board.SubmitResult
	err error
}

// confirmDoneMsg ends the Posted confirmation and restarts the cooldown.
type confirmDoneMsg struct{}

// startCooldownMsg evaluates persisted cooldown on launch.
type startCooldownMsg struct{}

type refreshTickMsg time.Time

type copyResultMsg struct {
	err error
}

// cursorBlinkMsg toggles the input cursor on/off.
type cursorBlinkMsg struct{}

func cursorBlinkCmd() tea.Cmd {
	return tea.Tick(530*time.Millisecond, func(time.Time) tea.Msg {
		return cursorBlinkMsg{}
	})
}

func refreshTickCmd() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return refreshTickMsg(t)
	})
}

// App is the root Bubbletea model for the comment board.
type App struct {
	board   *board.Board
	version string
	now     func() time.Time

	form       formModel
	list       listModel
	order      domain.SortOrder
	timer      cooldown.Timer
	submitting bool
	editing    bool // focus is in the form rather than the list
	cursorOn   bool
	helpOpen   bool
	status     string

	width  int
	height int
	frame  int
}

// NewApp creates the TUI over b.
func NewApp(b *board.Board, version string) App {
	return App{
		board:    b,
		version:  version,
		now:      time.Now,
		form:     newFormModel(),
		order:    domain.SortNewest,
		timer:    cooldown.NewTimer(cooldown.TickInterval),
		editing:  true,
		cursorOn: true,
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		a.loadView(),
		func() tea.Msg { return startCooldownMsg{} },
		refreshTickCmd(),
		shimmerTickCmd(),
		cursorBlinkCmd(),
	)
}

func (a App) loadView() tea.Cmd {
	b, order, now := a.board, a.order, a.now()
	return func() tea.Msg {
		view, err := b.Render(context.Background(), order, now)
		return renderedMsg{view: view, err: err}
	}
}

func (a App) submit() tea.Cmd {
	b, order, now := a.board, a.order, a.now()
	author, text := a.form.author, a.form.text
	return func() tea.Msg {
		res, err := b.Submit(context.Background(), author, text, order, now)
		return postedMsg{res: res, err: err}
	}
}

// applyCooldown re-reads the cooldown and updates the button. Reaching
// Ready stops the timer.
func (a App) applyCooldown() App {
	rem, err := a.board.Remaining(context.Background(), a.now())
	if err != nil {
		slog.Warn("read cooldown", "error", err)
		a.status = "storage error: " + err.Error()
		rem = 0
	}
	a.form.button = cooldown.StateFor(rem)
	if a.form.button.Phase == cooldown.Ready {
		a.timer = a.timer.Stop()
	}
	return a
}

// startCooldown replaces any running timer with a fresh one.
func (a App) startCooldown() (App, tea.Cmd) {
	var cmd tea.Cmd
	a.timer, cmd = a.timer.Start()
	a = a.applyCooldown()
	if !a.timer.Running() {
		return a, nil
	}
	return a, cmd
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.list.width = msg.Width
		a.list.height = a.listHeight()
		return a, nil

	case shimmerTickMsg:
		a.frame++
		return a, shimmerTickCmd()

	case cursorBlinkMsg:
		if a.editing {
			a.cursorOn = !a.cursorOn
		}
		return a, cursorBlinkCmd()

	case renderedMsg:
		if msg.err != nil {
			a.status = "storage error: " + msg.err.Error()
			return a, nil
		}
		a.list = a.list.setView(msg.view)
		return a, nil

	case refreshTickMsg:
		return a, tea.Batch(a.loadView(), refreshTickCmd())

	case startCooldownMsg:
		return a.startCooldown()

	case cooldown.TickMsg:
		if !a.timer.Owns(msg) {
			return a, nil
		}
		a = a.applyCooldown()
		return a, a.timer.Next()

	case postedMsg:
		a.submitting = false
		if msg.err != nil {
			if errors.Is(msg.err, board.ErrCooldownActive) || errors.Is(msg.err, board.ErrEmptyText) {
				return a, nil
			}
			slog.Error("post comment", "error", msg.err)
			a.status = "post failed: " + msg.err.Error()
			return a, nil
		}
		a.status = ""
		a.form = a.form.clear()
		a.list = a.list.setView(msg.res.View)
		a.list.cursor = 0
		a.timer = a.timer.Stop()
		a.form.button = cooldown.PostedState()
		return a, tea.Tick(cooldown.ConfirmDelay, func(time.Time) tea.Msg {
			return confirmDoneMsg{}
		})

	case confirmDoneMsg:
		return a.startCooldown()

	case copyResultMsg:
		if msg.err != nil {
			a.status = "copy failed: " + msg.err.Error()
		} else {
			a.status = "copied to clipboard"
		}
		return a, nil

	case tea.KeyMsg:
		return a.updateKeys(msg)
	}
	return a, nil
}

func (a App) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if a.helpOpen {
		switch key {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "?", "esc":
			a.helpOpen = false
		}
		return a, nil
	}

	switch key {
	case "ctrl+c":
		return a, tea.Quit
	case "ctrl+s":
		return a.trySubmit()
	case "tab":
		a.editing = true
		a.form = a.form.next()
		return a, nil
	case "shift+tab":
		a.editing = true
		a.form = a.form.prev()
		return a, nil
	}

	if a.editing {
		return a.updateForm(key)
	}
	return a.updateList(key)
}

func (a App) updateForm(key string) (tea.Model, tea.Cmd) {
	a.cursorOn = true
	switch key {
	case "esc":
		a.editing = false
		return a, nil
	case "enter":
		if a.form.focus == fieldAuthor {
			a.form.focus = fieldText
			return a, nil
		}
		return a.trySubmit()
	}
	if a.form.focus == fieldSubmit {
		return a, nil
	}
	a.form = a.form.edit(key)
	return a, nil
}

func (a App) updateList(key string) (tea.Model, tea.Cmd) {
	a.status = ""
	switch key {
	case "q":
		return a, tea.Quit
	case "?":
		a.helpOpen = true
	case "i", "enter":
		a.editing = true
		a.form.focus = fieldText
	case "j", "down":
		a.list = a.list.down()
	case "k", "up":
		a.list = a.list.up()
	case "s":
		return a.setOrder(a.order.Toggle())
	case "n":
		return a.setOrder(domain.SortNewest)
	case "o":
		return a.setOrder(domain.SortOldest)
	case "r":
		return a, a.loadView()
	case "c":
		if n, ok := a.list.selected(); ok {
			text := n.RawText
			return a, func() tea.Msg {
				return copyResultMsg{err: clipboard.WriteAll(text)}
			}
		}
	}
	return a, nil
}

func (a App) setOrder(order domain.SortOrder) (tea.Model, tea.Cmd) {
	if a.order == order {
		return a, nil
	}
	a.order = order
	a.list.cursor = 0
	return a, a.loadView()
}

// trySubmit posts unless the button is disabled or a post is in flight.
// Empty text is left to Submit, which rejects it silently.
func (a App) trySubmit() (tea.Model, tea.Cmd) {
	if a.submitting || a.form.button.Disabled {
		return a, nil
	}
	a.submitting = true
	return a, a.submit()
}

// isEditing reports whether keystrokes go to the form.
func (a App) isEditing() bool {
	return a.editing && !a.helpOpen
}

// Chrome: header(2) + title(1) + sep(1) + form(3) + sep(1) + status(1) + help(1).
const chromeLines = 10

func (a App) listHeight() int {
	return max(a.height-chromeLines, 3)
}

func (a App) View() string {
	logo := renderShimmerLogo(a.frame)
	logoPad := max((a.width-lipgloss.Width(logo))/2, 0)
	header := strings.Repeat(" ", logoPad) + logo + "\n"

	sep := " " + metaStyle.Render(strings.Repeat("─", max(a.width-2, 4)))

	var body string
	var help string
	if a.helpOpen {
		body = helpView()
		help = " " + helpEntry("esc", "close") + "  " + helpEntry("q", "quit")
	} else {
		var b strings.Builder
		title := titleStyle.Render("Comments") + " " + metaStyle.Render(a.list.view.CountLabel)
		sortLabel := sortToggle(a.order)
		gap := max(a.width-lipgloss.Width(title)-lipgloss.Width(sortLabel)-3, 1)
		b.WriteString(" " + title + strings.Repeat(" ", gap) + sortLabel + "\n")
		b.WriteString(sep + "\n")
		b.WriteString(a.form.View(a.isEditing(), a.cursorOn))
		b.WriteString(sep + "\n")
		b.WriteString(a.list.View(!a.isEditing()))
		body = b.String()

		if a.isEditing() {
			help = " " + helpEntry("tab", "next") + "  " + helpEntry("enter", "post") + "  " + helpEntry("esc", "browse")
		} else {
			help = " " + helpEntry("j/k", "nav") + "  " + helpEntry("s", "sort") + "  " + helpEntry("c", "copy") + "  " + helpEntry("i", "write") + "  " + helpEntry("?", "help") + "  " + helpEntry("q", "quit")
		}
	}

	statusLine := ""
	if a.status != "" {
		statusLine = " " + statusStyle.Render(a.status)
	}

	if a.height > 0 {
		body = strings.TrimRight(truncateToHeight(body, a.height-4), "\n")
	}
	return fmt.Sprintf("%s\n%s\n%s\n%s", header, body, statusLine, help)
}

// sortToggle renders the newest/oldest switch with the active side lit.
func sortToggle(order domain.SortOrder) string {
	newest := dimStyle.Render("newest")
	oldest := dimStyle.Render("oldest")
	if order == domain.SortOldest {
		oldest = selectedStyle.Underline(true).Render("oldest")
	} else {
		newest = selectedStyle.Underline(true).Render("newest")
	}
	return newest + metaStyle.Render(" · ") + oldest
}
