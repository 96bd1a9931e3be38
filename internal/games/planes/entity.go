package planes

import (
	"math"

	"github.com/arcadeworks/tui-planes/internal/core"
)

// Player is the pilot's plane. There is exactly one per session, created at
// the world origin. Angle is the heading used for turning, thrust and firing.
type Player struct {
	Body  Body
	Angle float64
	Hit   core.Box
}

// NewPlayer creates the player plane at the given display coordinates.
func NewPlayer(x, y int) *Player {
	return &Player{Body: NewBody(float64(x), float64(y))}
}

// Enemy is a hostile plane that chases the player. Its angle is recomputed
// from the bearing to the player every tick, never carried over.
type Enemy struct {
	Body     Body
	Angle    float64
	LastShot float64 // Time of the last shot, world clock
	Hit      core.Box

	downed bool // Marked by combat resolution, removed after the bullet scan
}

// NewEnemy creates an enemy plane at the given true position.
func NewEnemy(x, y float64) *Enemy {
	return &Enemy{Body: NewBody(x, y)}
}

// Bullet is a projectile fired by either side. Angle is fixed at creation
// and used only for display orientation. Team ownership decides which hit
// boxes it is tested against.
type Bullet struct {
	Body        Body
	Angle       float64
	Created     float64 // Creation time, world clock
	PlayerOwned bool
	Hit         core.Box
}

// NewBullet creates a bullet at the firer's display position, inheriting the
// firer's velocity plus the muzzle speed along the firing angle.
func NewBullet(x, y int, firerVX, firerVY, speed, angle, created float64, playerOwned bool) *Bullet {
	b := &Bullet{
		Body:        NewBody(float64(x), float64(y)),
		Angle:       angle,
		Created:     created,
		PlayerOwned: playerOwned,
	}
	b.Body.VelX = speed*math.Cos(angle) + firerVX
	b.Body.VelY = speed*math.Sin(angle) + firerVY
	return b
}
