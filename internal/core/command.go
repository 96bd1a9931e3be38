package core

// Command is the pilot input state for a single simulation tick. The four
// flags are independent: all may be set at once, and turning both ways in the
// same tick cancels out because both angle deltas are applied sequentially.
// The platform layer overwrites the whole struct before each tick
// (last-write-wins, no queueing).
type Command struct {
	TurnCCW    bool // Rotate counter-clockwise by one turn step
	TurnCW     bool // Rotate clockwise by one turn step
	Accelerate bool // Thrust along the current heading
	Fire       bool // Request a shot (subject to the fire cooldown)
}

// Any reports whether any command flag is set.
func (c Command) Any() bool {
	return c.TurnCCW || c.TurnCW || c.Accelerate || c.Fire
}
