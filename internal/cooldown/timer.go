package cooldown

import (
	"context"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickInterval is how often a running timer re-evaluates the button.
const TickInterval = 100 * time.Millisecond

// ConfirmDelay is how long the Posted state shows before the timer restarts.
const ConfirmDelay = time.Second

var lastTimerID int64

// TickMsg is delivered on every tick of a running Timer.
type TickMsg struct {
	ID int64
	At time.Time
}

// Timer is an owned handle to the repeating cooldown tick. Starting a timer
// yields a fresh id; ticks from any earlier id are stale and must be
// dropped, so at most one timer is live per handle.
type Timer struct {
	id       int64
	interval time.Duration
	running  bool
}

// NewTimer returns a stopped timer ticking at interval (TickInterval when
// non-positive).
func NewTimer(interval time.Duration) Timer {
	if interval <= 0 {
		interval = TickInterval
	}
	return Timer{interval: interval}
}

// Start cancels any previous run and returns the new handle with the
// command for its first tick.
func (t Timer) Start() (Timer, tea.Cmd) {
	if t.interval <= 0 {
		t.interval = TickInterval
	}
	t.id = atomic.AddInt64(&lastTimerID, 1)
	t.running = true
	return t, t.tick()
}

// Stop cancels the timer. Ticks already in flight become stale.
func (t Timer) Stop() Timer {
	t.running = false
	return t
}

// Running reports whether the timer is live.
func (t Timer) Running() bool {
	return t.running
}

// ID identifies the current run.
func (t Timer) ID() int64 {
	return t.id
}

// Owns reports whether msg came from this timer's live run.
func (t Timer) Owns(msg TickMsg) bool {
	return t.running && msg.ID == t.id
}

// Next schedules the following tick, or nil when stopped.
func (t Timer) Next() tea.Cmd {
	if !t.running {
		return nil
	}
	return t.tick()
}

func (t Timer) tick() tea.Cmd {
	id := t.id
	return tea.Tick(t.interval, func(at time.Time) tea.Msg {
		return TickMsg{ID: id, At: at}
	})
}

// Watch polls c every interval, reporting each state to onState, and
// returns once the cooldown reaches zero (after reporting Ready) or ctx ends.
func Watch(ctx context.Context, c *Controller, interval time.Duration, now func() time.Time, onState func(ButtonState)) error {
	if interval <= 0 {
		interval = TickInterval
	}
	if now == nil {
		now = time.Now
	}

	check := func() (bool, error) {
		rem, err := c.Remaining(ctx, now())
		if err != nil {
			return false, err
		}
		st := StateFor(rem)
		onState(st)
		return st.Phase == Ready, nil
	}

	done, err := check()
	if err != nil || done {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			done, err := check()
			if err != nil || done {
				return err
			}
		}
	}
}
