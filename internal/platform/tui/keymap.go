package tui

import (
	"time"

	"github.com/arcadeworks/tui-planes/internal/core"
)

// holdWindow is how long a key counts as held after a key-down. Terminals
// deliver no key-up events, so auto-repeat refreshes the window while a key
// stays pressed.
const holdWindow = 200 * time.Millisecond

// KeyTracker emulates held keys on top of terminal key-down events. Each
// control keeps an expiry deadline, refreshed on every press or repeat;
// Command reads which controls are still live at sample time.
type KeyTracker struct {
	turnCCWUntil time.Time
	turnCWUntil  time.Time
	accelUntil   time.Time
	fireUntil    time.Time
}

// NewKeyTracker creates a key tracker with all controls released.
func NewKeyTracker() *KeyTracker {
	return &KeyTracker{}
}

// Press records a key-down event. Returns false if the key is not a flight
// control.
func (k *KeyTracker) Press(key string, now time.Time) bool {
	until := now.Add(holdWindow)

	switch key {
	case "left", "a":
		k.turnCCWUntil = until
	case "right", "d":
		k.turnCWUntil = until
	case "up", "w":
		k.accelUntil = until
	case " ":
		k.fireUntil = until
	default:
		return false
	}
	return true
}

// Command returns the control flags live at the given sample time.
func (k *KeyTracker) Command(now time.Time) core.Command {
	return core.Command{
		TurnCCW:    now.Before(k.turnCCWUntil),
		TurnCW:     now.Before(k.turnCWUntil),
		Accelerate: now.Before(k.accelUntil),
		Fire:       now.Before(k.fireUntil),
	}
}

// Clear releases all controls.
func (k *KeyTracker) Clear() {
	*k = KeyTracker{}
}
