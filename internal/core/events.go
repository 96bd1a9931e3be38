package core

// EventKind identifies a discrete simulation event. Events are the
// fire-and-forget notification channel between the simulation and side-effect
// collaborators (audio cues, logging); they never influence the simulation.
type EventKind int

const (
	EventPlayerFired EventKind = iota // Player spawned a bullet
	EventEnemyFired                   // An enemy spawned a bullet
	EventEnemyDown                    // A player bullet destroyed an enemy
	EventPlayerDown                   // An enemy bullet hit the player (game over)
	EventTrackChange                  // Background music rotated to a new track
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventPlayerFired:
		return "PlayerFired"
	case EventEnemyFired:
		return "EnemyFired"
	case EventEnemyDown:
		return "EnemyDown"
	case EventPlayerDown:
		return "PlayerDown"
	case EventTrackChange:
		return "TrackChange"
	default:
		return "Unknown"
	}
}

// Event is a single simulation event. Track is only meaningful for
// EventTrackChange.
type Event struct {
	Kind  EventKind
	Track int
}
