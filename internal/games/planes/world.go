// Package planes implements the dogfight simulation: an open 2D world where
// the player's plane fights waves of chasing enemies. The package is pure
// logic driven by a monotonic clock; rendering, input and audio live in the
// platform layer and talk to the world through Command, Snapshot and Events.
package planes

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/arcadeworks/tui-planes/internal/config"
	"github.com/arcadeworks/tui-planes/internal/core"
)

// World owns the authoritative session state: the player singleton, the
// enemy and bullet collections, the kill counter, the playing flag and all
// cooldown clocks. A single goroutine advances it tick by tick; there is no
// internal locking.
type World struct {
	tuning config.PlanesConfig
	rng    *rand.Rand

	Player  *Player
	enemies []*Enemy
	bullets []*Bullet

	kills   int
	playing bool

	currentTime    float64
	lastTime       float64
	lastPlayerShot float64
	lastSpawn      float64

	track         int
	nextTrackTime float64

	events []core.Event
}

// NewWorld creates a fresh session starting at the given clock value.
// The player spawns at the origin and may fire immediately.
func NewWorld(tuning config.PlanesConfig, seed int64, start float64) *World {
	rng := rand.New(rand.NewSource(seed))
	w := &World{
		tuning:         tuning,
		rng:            rng,
		Player:         NewPlayer(0, 0),
		playing:        true,
		currentTime:    start,
		lastTime:       start - minFrameSeconds,
		lastPlayerShot: start - tuning.Combat.PlayerShotDelay,
		lastSpawn:      start,
		track:          rng.Intn(len(tuning.Music.TrackSeconds) + 1),
		nextTrackTime:  start,
	}
	w.Player.Hit = core.BoxAround(0, 0, tuning.Combat.PlaneHitHalf)
	return w
}

// Kills returns the number of enemies destroyed this session.
func (w *World) Kills() int {
	return w.kills
}

// Playing reports whether the session is still live. Once false the world is
// terminal: further Advance calls are no-ops.
func (w *World) Playing() bool {
	return w.playing
}

// Now returns the world clock value of the last completed tick.
func (w *World) Now() float64 {
	return w.currentTime
}

// Advance runs one simulation tick at the given monotonic clock value,
// applying the command flags sampled for this tick. Entities update in a
// fixed order (player, then enemies, then bullets) so that every hit box
// is final before bullet collision checks. The returned event slice is
// reused across ticks; consume it before the next call.
//
// Time must not go backwards: a regressing clock is a driver bug and panics.
func (w *World) Advance(cmd core.Command, now float64) []core.Event {
	if !w.playing {
		return nil
	}
	if now < w.currentTime {
		panic(fmt.Sprintf("planes: clock went backwards: %v -> %v", w.currentTime, now))
	}

	w.events = w.events[:0]
	w.lastTime = w.currentTime
	w.currentTime = now
	dt := w.currentTime - w.lastTime

	w.stepPlayer(cmd, dt)
	w.stepEnemies(dt)
	w.stepBullets(dt)
	w.checkMusic()

	return w.events
}

func (w *World) emit(ev core.Event) {
	w.events = append(w.events, ev)
}

// stepPlayer applies the tick's command flags and integrates the player.
// Order matters: turns, thrust and firing read the pre-move state; gravity
// lands after Move, so its pull is felt starting next tick.
func (w *World) stepPlayer(cmd core.Command, dt float64) {
	p := w.Player
	phys := w.tuning.Physics
	combat := w.tuning.Combat

	if cmd.TurnCCW {
		p.Angle += phys.TurnStep()
	}
	if cmd.TurnCW {
		p.Angle -= phys.TurnStep()
	}
	if cmd.Accelerate {
		p.Body.Accelerate(phys.PlayerThrust, p.Angle)
	}
	if cmd.Fire && w.currentTime-w.lastPlayerShot >= combat.PlayerShotDelay {
		w.lastPlayerShot = w.currentTime
		w.fireBullet(&p.Body, p.Angle, true)
		w.emit(core.Event{Kind: core.EventPlayerFired})
	}

	p.Body.Drag(phys.PlayerDrag)
	p.Body.Move(dt)
	p.Body.Gravity(phys.Gravity)
	p.Hit = core.BoxAround(p.Body.X, p.Body.Y, combat.PlaneHitHalf)
}

// stepEnemies runs the spawner, then steers every enemy toward the player.
func (w *World) stepEnemies(dt float64) {
	w.spawnCheck()

	phys := w.tuning.Physics
	combat := w.tuning.Combat
	p := w.Player

	for _, e := range w.enemies {
		// Bearing to the player on display coordinates; y is inverted
		// because screen y grows downward.
		e.Angle = math.Atan2(float64(e.Body.Y-p.Body.Y), float64(p.Body.X-e.Body.X))
		e.Body.Accelerate(phys.EnemyThrust, e.Angle)
		e.Body.Drag(phys.EnemyDrag)
		e.Body.Move(dt)
		e.Hit = core.BoxAround(e.Body.X, e.Body.Y, combat.PlaneHitHalf)

		if w.currentTime-e.LastShot >= combat.EnemyShotDelay {
			e.LastShot = w.currentTime
			w.fireBullet(&e.Body, e.Angle, false)
			w.emit(core.Event{Kind: core.EventEnemyFired})
		}
	}
}

// spawnCheck spawns one enemy when the interval elapses and the cap allows.
// The spawn clock resets even when the cap blocks the spawn, and the <= cap
// comparison admits one enemy beyond MaxEnemies; both quirks are kept as
// shipped.
func (w *World) spawnCheck() {
	sp := w.tuning.Spawner
	if w.currentTime-w.lastSpawn < sp.Interval {
		return
	}
	w.lastSpawn = w.currentTime
	if len(w.enemies) > sp.MaxEnemies {
		return
	}
	w.enemies = append(w.enemies, w.spawnEnemy())
}

// spawnEnemy places a new enemy on an annulus around the player: uniform
// angle, distance uniform in [MinRadius, MaxRadius). The new enemy may fire
// on its first tick.
func (w *World) spawnEnemy() *Enemy {
	sp := w.tuning.Spawner
	dist := sp.MinRadius + w.rng.Float64()*(sp.MaxRadius-sp.MinRadius)
	ang := w.rng.Float64() * 2 * math.Pi

	e := NewEnemy(
		float64(w.Player.Body.X)+dist*math.Cos(ang),
		float64(w.Player.Body.Y)+dist*math.Sin(ang),
	)
	e.LastShot = w.currentTime - w.tuning.Combat.EnemyShotDelay
	return e
}

// fireBullet spawns a bullet at the firer's display position. The bullet
// joins this tick's bullet pass, so it moves once on its creation tick.
func (w *World) fireBullet(from *Body, angle float64, playerOwned bool) {
	b := NewBullet(from.X, from.Y, from.VelX, from.VelY,
		w.tuning.Combat.BulletSpeed, angle, w.currentTime, playerOwned)
	w.bullets = append(w.bullets, b)
}

// stepBullets ages, moves and collision-tests every bullet, then applies
// removals in a second phase so the whole scan sees a consistent snapshot of
// this tick's hit boxes.
func (w *World) stepBullets(dt float64) {
	combat := w.tuning.Combat
	var expired []int

	for i, b := range w.bullets {
		if w.currentTime-b.Created >= combat.BulletTTL {
			// The bullet still gets its final move below; it is gone
			// before anything can observe the phantom position.
			expired = append(expired, i)
		}
		b.Body.Move(dt)
		b.Hit = core.BoxAround(b.Body.X, b.Body.Y, combat.BulletHitHalf)

		if b.PlayerOwned {
			for _, e := range w.enemies {
				if e.downed {
					continue
				}
				if b.Hit.Overlaps(e.Hit) {
					// First live enemy in insertion order wins. The
					// bullet is not consumed by the kill: it flies on
					// until its TTL expires. Kept as shipped.
					e.downed = true
					w.kills++
					w.emit(core.Event{Kind: core.EventEnemyDown})
					break
				}
			}
		} else if w.playing && b.Hit.Overlaps(w.Player.Hit) {
			w.playing = false
			w.emit(core.Event{Kind: core.EventPlayerDown})
		}
	}

	if len(expired) > 0 {
		w.removeBullets(expired)
	}
	w.compactEnemies()
}

// removeBullets drops the bullets at the given ascending indices.
func (w *World) removeBullets(expired []int) {
	kept := w.bullets[:0]
	j := 0
	for i, b := range w.bullets {
		if j < len(expired) && expired[j] == i {
			j++
			continue
		}
		kept = append(kept, b)
	}
	for i := len(kept); i < len(w.bullets); i++ {
		w.bullets[i] = nil
	}
	w.bullets = kept
}

// compactEnemies drops enemies downed during the bullet scan.
func (w *World) compactEnemies() {
	kept := w.enemies[:0]
	for _, e := range w.enemies {
		if e.downed {
			continue
		}
		kept = append(kept, e)
	}
	for i := len(kept); i < len(w.enemies); i++ {
		w.enemies[i] = nil
	}
	w.enemies = kept
}

// checkMusic rotates the background track when the current one runs out.
// Track numbers cycle 1..n; the collaborator layer maps them to audio.
func (w *World) checkMusic() {
	tracks := w.tuning.Music.TrackSeconds
	if len(tracks) == 0 {
		return
	}
	if w.currentTime <= w.nextTrackTime {
		return
	}
	w.track++
	if w.track > len(tracks) {
		w.track = 1
	}
	w.nextTrackTime = w.currentTime + tracks[w.track-1]
	w.emit(core.Event{Kind: core.EventTrackChange, Track: w.track})
}
