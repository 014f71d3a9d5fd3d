// Package cooldown enforces the minimum delay between posts and drives the
// submit control's Ready/Locked state.
package cooldown

import (
	"context"
	"fmt"
	"time"
)

// DefaultWindow is the enforced delay between successive posts.
const DefaultWindow = 30 * time.Second

// PostClock reports when the last post happened.
type PostClock interface {
	LastPostTime(ctx context.Context) (ms int64, ok bool, err error)
}

// Controller computes remaining cooldown from persisted state. It keeps no
// state of its own; every call re-reads the last post time.
type Controller struct {
	src    PostClock
	window time.Duration
}

// New returns a Controller. A non-positive window uses DefaultWindow.
func New(src PostClock, window time.Duration) *Controller {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Controller{src: src, window: window}
}

// Window returns the configured cooldown length.
func (c *Controller) Window() time.Duration {
	return c.window
}

// Remaining returns how long until the next post is allowed. Never negative.
func (c *Controller) Remaining(ctx context.Context, now time.Time) (time.Duration, error) {
	last, ok, err := c.src.LastPostTime(ctx)
	if err != nil {
		return 0, fmt.Errorf("remaining cooldown: %w", err)
	}
	if !ok {
		return 0, nil
	}
	return RemainingAt(last, now.UnixMilli(), c.window), nil
}

// RemainingAt is max(0, window - (nowMs - lastMs)) at millisecond precision.
func RemainingAt(lastMs, nowMs int64, window time.Duration) time.Duration {
	rem := window.Milliseconds() - (nowMs - lastMs)
	if rem <= 0 {
		return 0
	}
	return time.Duration(rem) * time.Millisecond
}
