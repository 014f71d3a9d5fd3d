package cooldown

import (
	"fmt"
	"time"
)

// Phase is the submit control's state.
type Phase int

const (
	Ready  Phase = iota
	Locked       // cooldown running
	Posted       // brief confirmation right after a successful post
)

func (p Phase) String() string {
	switch p {
	case Locked:
		return "locked"
	case Posted:
		return "posted"
	default:
		return "ready"
	}
}

// Button labels.
const (
	ReadyLabel  = "Post Comment"
	PostedLabel = "✓ Posted!"
)

// ButtonState is everything the UI needs to draw the submit control.
type ButtonState struct {
	Phase    Phase
	Disabled bool
	Label    string
}

// StateFor maps remaining cooldown to Ready or Locked.
func StateFor(remaining time.Duration) ButtonState {
	if remaining > 0 {
		return ButtonState{
			Phase:    Locked,
			Disabled: true,
			Label:    fmt.Sprintf("Wait %ds", WaitSeconds(remaining)),
		}
	}
	return ButtonState{Phase: Ready, Label: ReadyLabel}
}

// PostedState is shown for ConfirmDelay after a successful post.
func PostedState() ButtonState {
	return ButtonState{Phase: Posted, Disabled: true, Label: PostedLabel}
}

// WaitSeconds rounds remaining up to whole seconds.
func WaitSeconds(remaining time.Duration) int64 {
	ms := remaining.Milliseconds()
	if ms <= 0 {
		return 0
	}
	return (ms + 999) / 1000
}
