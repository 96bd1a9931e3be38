package planes

// PlaneState is the observable pose of one plane.
type PlaneState struct {
	X, Y     int     // Display position
	TrueX    float64 // True position, sub-cell precision
	TrueY    float64
	VelX     float64
	VelY     float64
	Angle    float64
	LastShot float64 // Zero for the player, which tracks its cooldown in the world
}

// BulletState is the observable pose of one bullet.
type BulletState struct {
	X, Y        int
	VelX, VelY  float64
	Angle       float64
	Created     float64
	PlayerOwned bool
}

// Snapshot captures the complete world state for rendering and replay
// comparison. Slices are freshly allocated; the caller may keep them.
type Snapshot struct {
	Time    float64
	Kills   int
	Playing bool
	Track   int

	Player  PlaneState
	Enemies []PlaneState
	Bullets []BulletState
}

// Snapshot returns the current world snapshot.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Time:    w.currentTime,
		Kills:   w.kills,
		Playing: w.playing,
		Track:   w.track,
		Player: PlaneState{
			X:     w.Player.Body.X,
			Y:     w.Player.Body.Y,
			TrueX: w.Player.Body.TrueX,
			TrueY: w.Player.Body.TrueY,
			VelX:  w.Player.Body.VelX,
			VelY:  w.Player.Body.VelY,
			Angle: w.Player.Angle,
		},
		Enemies: make([]PlaneState, 0, len(w.enemies)),
		Bullets: make([]BulletState, 0, len(w.bullets)),
	}

	for _, e := range w.enemies {
		s.Enemies = append(s.Enemies, PlaneState{
			X:        e.Body.X,
			Y:        e.Body.Y,
			TrueX:    e.Body.TrueX,
			TrueY:    e.Body.TrueY,
			VelX:     e.Body.VelX,
			VelY:     e.Body.VelY,
			Angle:    e.Angle,
			LastShot: e.LastShot,
		})
	}

	for _, b := range w.bullets {
		s.Bullets = append(s.Bullets, BulletState{
			X:           b.Body.X,
			Y:           b.Body.Y,
			VelX:        b.Body.VelX,
			VelY:        b.Body.VelY,
			Angle:       b.Angle,
			Created:     b.Created,
			PlayerOwned: b.PlayerOwned,
		})
	}

	return s
}
