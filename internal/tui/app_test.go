package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/naveenspark/phawse/internal/board"
	"github.com/naveenspark/phawse/internal/cooldown"
	"github.com/naveenspark/phawse/internal/store"
	"github.com/naveenspark/phawse/pkg/domain"
)

const testNow = int64(1_700_000_000_000)

type testClock struct{ ms int64 }

func (c *testClock) now() time.Time { return time.UnixMilli(c.ms) }

func newTestApp(t *testing.T) (App, *store.Memory, *testClock) {
	t.Helper()
	kv := store.NewMemory("test")
	clock := &testClock{ms: testNow}
	a := NewApp(board.New(kv, board.Options{}), "test")
	a.now = clock.now
	a.width = 80
	a.height = 30
	a.list.width = 80
	a.list.height = a.listHeight()
	return a, kv, clock
}

func update(t *testing.T, a App, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()
	model, cmd := a.Update(msg)
	return model.(App), cmd
}

func typeText(t *testing.T, a App, s string) App {
	t.Helper()
	for _, r := range s {
		a, _ = update(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return a
}

// post types text and runs the resulting submit command to completion.
func post(t *testing.T, a App, text string) App {
	t.Helper()
	a = typeText(t, a, text)
	a, cmd := update(t, a, tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd == nil {
		t.Fatal("expected submit command on ctrl+s")
	}
	a, _ = update(t, a, cmd())
	return a
}

func TestAppStartsInReadyState(t *testing.T) {
	a, _, _ := newTestApp(t)
	a, cmd := update(t, a, startCooldownMsg{})
	if a.form.button.Phase != cooldown.Ready {
		t.Errorf("expected Ready, got %v", a.form.button.Phase)
	}
	if a.timer.Running() || cmd != nil {
		t.Error("no timer should run when there is no cooldown")
	}
}

func TestAppStartsLockedFromPersistedPost(t *testing.T) {
	a, kv, _ := newTestApp(t)
	if err := store.NewComments(kv).RecordPostTime(context.Background(), testNow-10_000); err != nil {
		t.Fatal(err)
	}

	a, cmd := update(t, a, startCooldownMsg{})
	if a.form.button.Phase != cooldown.Locked {
		t.Fatalf("expected Locked, got %v", a.form.button.Phase)
	}
	if a.form.button.Label != "Wait 20s" {
		t.Errorf("label = %q, want %q", a.form.button.Label, "Wait 20s")
	}
	if !a.timer.Running() || cmd == nil {
		t.Error("expected a running cooldown timer")
	}
}

func TestAppSubmitFlow(t *testing.T) {
	a, kv, _ := newTestApp(t)
	a = typeText(t, a, "hello board")
	if a.form.text != "hello board" {
		t.Fatalf("form text = %q", a.form.text)
	}

	a, cmd := update(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected submit command on enter in text field")
	}
	if !a.submitting {
		t.Error("expected submitting=true while post is in flight")
	}

	a, cmd = update(t, a, cmd())
	if a.form.text != "" || a.form.author != "" {
		t.Errorf("form not cleared: author=%q text=%q", a.form.author, a.form.text)
	}
	if a.form.button.Phase != cooldown.Posted {
		t.Errorf("expected Posted after success, got %v", a.form.button.Phase)
	}
	if cmd == nil {
		t.Error("expected confirmation delay command")
	}
	if a.list.view.CountLabel != "(1)" || a.list.view.Nodes[0].RawAuthor != "Anonymous" {
		t.Errorf("list after post = %+v", a.list.view)
	}

	stored, _ := store.NewComments(kv).LoadComments(context.Background())
	if len(stored) != 1 || stored[0].Text != "hello board" {
		t.Errorf("stored = %+v", stored)
	}

	a, cmd = update(t, a, confirmDoneMsg{})
	if a.form.button.Phase != cooldown.Locked || a.form.button.Label != "Wait 30s" {
		t.Errorf("after confirmation: %+v, want Locked Wait 30s", a.form.button)
	}
	if !a.timer.Running() || cmd == nil {
		t.Error("expected cooldown timer to restart after confirmation")
	}
}

func TestAppSubmitUsesAuthor(t *testing.T) {
	a, _, _ := newTestApp(t)
	a, _ = update(t, a, tea.KeyMsg{Type: tea.KeyShiftTab}) // text -> author
	if a.form.focus != fieldAuthor {
		t.Fatalf("focus = %d, want author", a.form.focus)
	}
	a = typeText(t, a, "  zoe ")
	a, _ = update(t, a, tea.KeyMsg{Type: tea.KeyEnter}) // author -> text
	a = post(t, a, "hi")
	if got := a.list.view.Nodes[0].RawAuthor; got != "zoe" {
		t.Errorf("author = %q, want zoe", got)
	}
}

func TestAppSubmitIgnoredWhileLocked(t *testing.T) {
	a, _, clock := newTestApp(t)
	a = post(t, a, "first")
	a, _ = update(t, a, confirmDoneMsg{})

	clock.ms += 5_000
	a = typeText(t, a, "second")
	_, cmd := update(t, a, tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd != nil {
		t.Error("submit should be ignored while the button is locked")
	}
}

func TestAppSubmitIgnoredWhilePosted(t *testing.T) {
	a, _, _ := newTestApp(t)
	a = post(t, a, "first")
	a = typeText(t, a, "again")
	if _, cmd := update(t, a, tea.KeyMsg{Type: tea.KeyCtrlS}); cmd != nil {
		t.Error("submit should be ignored during the Posted confirmation")
	}
}

func TestAppEmptySubmitIsSilent(t *testing.T) {
	a, kv, _ := newTestApp(t)
	a = typeText(t, a, "   ")
	a, cmd := update(t, a, tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd == nil {
		t.Fatal("expected submit command")
	}
	a, _ = update(t, a, cmd())
	if a.status != "" {
		t.Errorf("empty submit should not set status, got %q", a.status)
	}
	if a.form.button.Phase != cooldown.Ready {
		t.Errorf("button = %v, want Ready", a.form.button.Phase)
	}
	if _, ok, _ := kv.Get(context.Background(), store.CommentsKey); ok {
		t.Error("empty submit wrote comments")
	}
}

func TestAppCooldownTicksToReady(t *testing.T) {
	a, _, clock := newTestApp(t)
	a = post(t, a, "first")
	a, _ = update(t, a, confirmDoneMsg{})
	id := a.timer.ID()

	clock.ms = testNow + 12_500
	a, cmd := update(t, a, cooldown.TickMsg{ID: id})
	if a.form.button.Label != "Wait 18s" {
		t.Errorf("label = %q, want Wait 18s", a.form.button.Label)
	}
	if cmd == nil {
		t.Error("expected next tick while locked")
	}

	clock.ms = testNow + 30_000
	a, cmd = update(t, a, cooldown.TickMsg{ID: id})
	if a.form.button.Phase != cooldown.Ready || a.form.button.Label != "Post Comment" {
		t.Errorf("button = %+v, want Ready", a.form.button)
	}
	if a.timer.Running() || cmd != nil {
		t.Error("timer should stop once Ready")
	}
}

func TestAppIgnoresStaleTicks(t *testing.T) {
	a, kv, _ := newTestApp(t)
	_ = store.NewComments(kv).RecordPostTime(context.Background(), testNow)

	a, _ = update(t, a, startCooldownMsg{})
	stale := a.timer.ID()
	a, _ = update(t, a, startCooldownMsg{})
	if a.timer.ID() == stale {
		t.Fatal("restart should replace the timer")
	}

	before := a.form.button
	a, cmd := update(t, a, cooldown.TickMsg{ID: stale})
	if cmd != nil {
		t.Error("stale tick should not schedule another tick")
	}
	if a.form.button != before {
		t.Errorf("stale tick changed button: %+v -> %+v", before, a.form.button)
	}
}

func TestAppSortToggle(t *testing.T) {
	a, kv, _ := newTestApp(t)
	_ = store.NewComments(kv).SaveComments(context.Background(), []domain.Comment{
		{ID: "100", Author: "a", Text: "x", Timestamp: 100},
		{ID: "300", Author: "b", Text: "y", Timestamp: 300},
		{ID: "200", Author: "c", Text: "z", Timestamp: 200},
	})

	a, _ = update(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	if a.isEditing() {
		t.Fatal("esc should leave the form")
	}

	a, cmd := update(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("o")})
	if a.order != domain.SortOldest || cmd == nil {
		t.Fatalf("order = %q cmd nil = %v", a.order, cmd == nil)
	}
	a, _ = update(t, a, cmd())
	if got := nodeIDs(a.list.view.Nodes); got != "100,200,300" {
		t.Errorf("oldest ids = %s", got)
	}

	a, cmd = update(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	if a.order != domain.SortNewest {
		t.Fatalf("toggle should switch back to newest, got %q", a.order)
	}
	a, _ = update(t, a, cmd())
	if got := nodeIDs(a.list.view.Nodes); got != "300,200,100" {
		t.Errorf("newest ids = %s", got)
	}

	// Same order again is a no-op.
	if _, cmd := update(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")}); cmd != nil {
		t.Error("selecting the active order should not re-render")
	}
}

func TestAppPostRendersWithActiveOrder(t *testing.T) {
	a, kv, _ := newTestApp(t)
	_ = store.NewComments(kv).SaveComments(context.Background(), []domain.Comment{
		{ID: "1", Author: "a", Text: "old", Timestamp: 1},
	})
	a.order = domain.SortOldest
	a = post(t, a, "new")
	if got := a.list.view.Nodes[0].ID; got != "1" {
		t.Errorf("first node = %s, want oldest first", got)
	}
}

func TestAppTypingQDoesNotQuit(t *testing.T) {
	a, _, _ := newTestApp(t)
	a, cmd := update(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd != nil {
		t.Error("q in the form should type, not quit")
	}
	if a.form.text != "q" {
		t.Errorf("form text = %q, want q", a.form.text)
	}
}

func TestAppQuitFromList(t *testing.T) {
	a, _, _ := newTestApp(t)
	a, _ = update(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	if _, cmd := update(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}); cmd == nil {
		t.Error("expected quit command on q in list mode")
	}
}

func TestAppTextCapAt500(t *testing.T) {
	a, _, _ := newTestApp(t)
	a.form.text = strings.Repeat("x", domain.MaxTextLen)
	a = typeText(t, a, "y")
	if a.form.textLen() != domain.MaxTextLen {
		t.Errorf("text length = %d, want %d", a.form.textLen(), domain.MaxTextLen)
	}
}

func TestAppRefreshTick(t *testing.T) {
	a, _, _ := newTestApp(t)
	if _, cmd := update(t, a, refreshTickMsg(time.Now())); cmd == nil {
		t.Error("refresh tick should reload and reschedule")
	}
}

func TestAppCopyWithoutSelection(t *testing.T) {
	a, _, _ := newTestApp(t)
	a, _ = update(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	if _, cmd := update(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("c")}); cmd != nil {
		t.Error("copy with an empty list should do nothing")
	}
	a, _ = update(t, a, copyResultMsg{})
	if a.status != "copied to clipboard" {
		t.Errorf("status = %q", a.status)
	}
}

func TestAppEmptyView(t *testing.T) {
	a, _, _ := newTestApp(t)
	a, _ = update(t, a, a.loadView()())
	view := a.View()
	for _, want := range []string{"Comments", "(0)", "No comments yet", "Post Comment", "0/500"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestAppViewShowsCommentsSafely(t *testing.T) {
	a, kv, _ := newTestApp(t)
	_ = store.NewComments(kv).SaveComments(context.Background(), []domain.Comment{
		{ID: "1", Author: "mallory", Text: "\x1b[2Jwiped <b>bold</b>", Timestamp: testNow},
	})
	a, _ = update(t, a, a.loadView()())
	view := a.View()
	if strings.Contains(view, "\x1b[2J") {
		t.Error("view contains a raw escape sequence from comment text")
	}
	if !strings.Contains(view, "<b>bold</b>") {
		t.Errorf("markup should show as literal text:\n%s", view)
	}
	if !strings.Contains(view, "mallory") || !strings.Contains(view, "Just now") {
		t.Errorf("view missing author or time:\n%s", view)
	}
}

func TestAppHelpOverlay(t *testing.T) {
	a, _, _ := newTestApp(t)
	a, _ = update(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	a, _ = update(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	if !a.helpOpen {
		t.Fatal("expected help overlay")
	}
	if !strings.Contains(a.View(), "P H A W S E") {
		t.Error("help overlay not rendered")
	}
	a, _ = update(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	if a.helpOpen {
		t.Error("esc should close help")
	}
}

func nodeIDs(nodes []board.Node) string {
	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID
	}
	return strings.Join(ids, ",")
}
