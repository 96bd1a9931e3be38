package planes

import (
	"math"
	"testing"

	"github.com/arcadeworks/tui-planes/internal/config"
	"github.com/arcadeworks/tui-planes/internal/core"
)

const tick = 1.0 / 60

func testWorld(seed int64) *World {
	return NewWorld(config.DefaultPlanesConfig(), seed, 0)
}

func hasEvent(events []core.Event, kind core.EventKind) bool {
	return countEvents(events, kind) > 0
}

func countEvents(events []core.Event, kind core.EventKind) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

func TestPlayerFireCooldown(t *testing.T) {
	w := testWorld(1)
	fire := core.Command{Fire: true}

	// The player may fire immediately on the first tick
	events := w.Advance(fire, 1.0)
	if !hasEvent(events, core.EventPlayerFired) {
		t.Error("First shot should fire immediately")
	}
	if len(w.bullets) != 1 {
		t.Fatalf("Expected 1 bullet, got %d", len(w.bullets))
	}

	// 0.3s after the shot: still cooling down
	events = w.Advance(fire, 1.3)
	if hasEvent(events, core.EventPlayerFired) {
		t.Error("Shot during cooldown should be suppressed")
	}
	if len(w.bullets) != 1 {
		t.Errorf("Expected 1 bullet during cooldown, got %d", len(w.bullets))
	}

	// Exactly the cooldown later: eligible again
	events = w.Advance(fire, 1.5)
	if !hasEvent(events, core.EventPlayerFired) {
		t.Error("Shot exactly at cooldown boundary should fire")
	}
	if len(w.bullets) != 2 {
		t.Errorf("Expected 2 bullets, got %d", len(w.bullets))
	}
}

func TestBulletInheritsFirerVelocity(t *testing.T) {
	w := testWorld(1)
	w.Player.Body.VelX = 2
	w.Player.Body.VelY = 1

	w.Advance(core.Command{Fire: true}, tick)

	snap := w.Snapshot()
	if len(snap.Bullets) != 1 {
		t.Fatalf("Expected 1 bullet, got %d", len(snap.Bullets))
	}
	b := snap.Bullets[0]

	// Muzzle speed 8 along angle 0 plus the firer's velocity
	if b.VelX != 10 || b.VelY != 1 {
		t.Errorf("Bullet velocity = (%v, %v), expected (10, 1)", b.VelX, b.VelY)
	}
	if !b.PlayerOwned {
		t.Error("Player shot should produce a player-owned bullet")
	}

	// The bullet moves on its creation tick: one full-rate frame of its
	// velocity, with y inverted for the upward component.
	if b.X != 10 || b.Y != -1 {
		t.Errorf("Bullet display = (%d, %d), expected (10, -1)", b.X, b.Y)
	}
}

func TestSpawnAnnulusDistance(t *testing.T) {
	minD, maxD := math.Inf(1), math.Inf(-1)

	for seed := int64(0); seed < 200; seed++ {
		w := testWorld(seed)
		w.Advance(core.Command{}, 5.9999)
		w.Advance(core.Command{}, 6.0)

		snap := w.Snapshot()
		if len(snap.Enemies) != 1 {
			t.Fatalf("seed %d: expected 1 enemy after spawn interval, got %d", seed, len(snap.Enemies))
		}

		e := snap.Enemies[0]
		d := math.Hypot(e.TrueX, e.TrueY)

		// Small tolerance for the fraction of a tick the enemy has flown
		if d < 749.99 || d > 1000.01 {
			t.Errorf("seed %d: spawn distance %v outside [750, 1000)", seed, d)
		}

		minD = math.Min(minD, d)
		maxD = math.Max(maxD, d)
	}

	// Distances should spread across the annulus, not cluster at one radius
	if minD > 820 {
		t.Errorf("Min spawn distance %v suspiciously high", minD)
	}
	if maxD < 930 {
		t.Errorf("Max spawn distance %v suspiciously low", maxD)
	}
}

func TestEnemyBearingRecomputed(t *testing.T) {
	w := testWorld(1)
	e := NewEnemy(100, 50)
	w.enemies = append(w.enemies, e)

	w.Advance(core.Command{}, tick)

	// Bearing from display deltas with y flipped: the player is up-left of
	// the enemy on screen.
	want := math.Atan2(50, -100)
	if e.Angle != want {
		t.Errorf("Angle = %v, expected %v", e.Angle, want)
	}

	// Teleport the enemy: the bearing must follow, not carry over
	e.Body = NewBody(-300, 0)
	w.Advance(core.Command{}, 2*tick)

	if e.Angle != 0 {
		t.Errorf("Angle after teleport = %v, expected 0", e.Angle)
	}
}

func TestEnemyFiresWhenEligible(t *testing.T) {
	w := testWorld(1)
	e := NewEnemy(500, 0)
	e.LastShot = -2.5 // Eligible from the first tick
	w.enemies = append(w.enemies, e)

	events := w.Advance(core.Command{}, tick)
	if !hasEvent(events, core.EventEnemyFired) {
		t.Error("Eligible enemy should fire on its first tick")
	}

	snap := w.Snapshot()
	if len(snap.Bullets) != 1 || snap.Bullets[0].PlayerOwned {
		t.Fatalf("Expected 1 enemy-owned bullet, got %+v", snap.Bullets)
	}
	if e.LastShot != tick {
		t.Errorf("LastShot = %v, expected %v", e.LastShot, tick)
	}

	// Next tick: cooling down
	events = w.Advance(core.Command{}, 2*tick)
	if hasEvent(events, core.EventEnemyFired) {
		t.Error("Enemy should not fire during its cooldown")
	}
}

func TestEnemyGetsNoGravity(t *testing.T) {
	w := testWorld(1)
	e := NewEnemy(1000, 0)
	e.LastShot = 1e9
	w.enemies = append(w.enemies, e)

	w.Advance(core.Command{}, tick)

	// The only vertical velocity an enemy can gain is its chase thrust,
	// which is ~0 for a dead-horizontal bearing.
	if math.Abs(e.Body.VelY) > 1e-9 {
		t.Errorf("Enemy VelY = %v, expected ~0", e.Body.VelY)
	}

	// The player, in contrast, always falls
	if w.Player.Body.VelY != -0.15 {
		t.Errorf("Player VelY = %v, expected -0.15", w.Player.Body.VelY)
	}
}

func TestBulletExpiresAtTTL(t *testing.T) {
	w := testWorld(1)
	b := NewBullet(5000, 5000, 0, 0, 0, 0, 0, false)
	w.bullets = append(w.bullets, b)

	w.Advance(core.Command{}, 1.9)
	snap := w.Snapshot()
	if len(snap.Bullets) != 1 {
		t.Fatal("Bullet should survive just below its TTL")
	}

	// Bullets get no gravity: a stationary bullet stays put
	if snap.Bullets[0].Y != 5000 || snap.Bullets[0].VelY != 0 {
		t.Errorf("Stationary bullet drifted to Y=%d VelY=%v", snap.Bullets[0].Y, snap.Bullets[0].VelY)
	}

	w.Advance(core.Command{}, 2.0)
	if len(w.bullets) != 0 {
		t.Error("Bullet should expire exactly at its TTL")
	}
}

func TestKillLeavesBulletInFlight(t *testing.T) {
	w := testWorld(1)
	e := NewEnemy(100, 0)
	e.LastShot = 1e9
	w.enemies = append(w.enemies, e)
	w.bullets = append(w.bullets, NewBullet(100, 0, 0, 0, 0, 0, 0, true))

	events := w.Advance(core.Command{}, tick)

	if w.Kills() != 1 {
		t.Errorf("Kills = %d, expected 1", w.Kills())
	}
	if !hasEvent(events, core.EventEnemyDown) {
		t.Error("Expected an enemy-down event")
	}
	if len(w.enemies) != 0 {
		t.Errorf("Downed enemy should be removed, %d left", len(w.enemies))
	}
	// The killing bullet flies on until its TTL expires. Current behavior.
	if len(w.bullets) != 1 {
		t.Errorf("Bullet should survive the kill, got %d bullets", len(w.bullets))
	}
}

func TestDoubleHitCountsOneKill(t *testing.T) {
	w := testWorld(1)
	e := NewEnemy(100, 0)
	e.LastShot = 1e9
	w.enemies = append(w.enemies, e)
	w.bullets = append(w.bullets,
		NewBullet(100, 0, 0, 0, 0, 0, 0, true),
		NewBullet(101, 0, 0, 0, 0, 0, 0, true),
	)

	events := w.Advance(core.Command{}, tick)

	if w.Kills() != 1 {
		t.Errorf("Kills = %d, expected 1 for a single enemy", w.Kills())
	}
	if n := countEvents(events, core.EventEnemyDown); n != 1 {
		t.Errorf("Expected exactly 1 enemy-down event, got %d", n)
	}
	if len(w.enemies) != 0 {
		t.Errorf("Enemy should be removed, %d left", len(w.enemies))
	}
	if len(w.bullets) != 2 {
		t.Errorf("Both bullets should survive, got %d", len(w.bullets))
	}
}

func TestPlayerDownFreezesWorld(t *testing.T) {
	w := testWorld(1)
	w.bullets = append(w.bullets, NewBullet(0, 0, 0, 0, 0, 0, 0, false))

	events := w.Advance(core.Command{}, tick)

	if !hasEvent(events, core.EventPlayerDown) {
		t.Fatal("Expected a player-down event")
	}
	if w.Playing() {
		t.Fatal("World should be terminal after the player goes down")
	}

	before := w.Snapshot()

	// Further ticks are no-ops, whatever the command
	events = w.Advance(core.Command{Fire: true, Accelerate: true}, 1.0)
	if events != nil {
		t.Errorf("Terminal world should return nil events, got %v", events)
	}

	after := w.Snapshot()
	if after.Time != before.Time {
		t.Error("Terminal world clock should not advance")
	}
	if after.Player.TrueX != before.Player.TrueX || after.Player.TrueY != before.Player.TrueY {
		t.Error("Terminal world should not move the player")
	}

	// Even a regressing clock is ignored once terminal
	w.Advance(core.Command{}, 0.001)
}

func TestSpawnCapOffByOne(t *testing.T) {
	w := testWorld(1)
	for i := 0; i < 5; i++ {
		e := NewEnemy(float64(2000+i*100), 2000)
		e.LastShot = 1e9
		w.enemies = append(w.enemies, e)
	}

	// 5 on the field passes the <= 5 gate: a sixth spawns. Kept as shipped.
	w.Advance(core.Command{}, 6.0)
	if len(w.enemies) != 6 {
		t.Fatalf("Expected 6 enemies after spawn at cap, got %d", len(w.enemies))
	}

	// 6 on the field blocks the spawn, but the timer still resets
	w.Advance(core.Command{}, 12.0)
	if len(w.enemies) != 6 {
		t.Errorf("Expected spawn blocked above cap, got %d enemies", len(w.enemies))
	}
	if w.lastSpawn != 12.0 {
		t.Errorf("lastSpawn = %v, expected 12.0 (reset even when blocked)", w.lastSpawn)
	}
}

func TestSpawnTimerResetWhenCapBlocks(t *testing.T) {
	w := testWorld(1)
	for i := 0; i < 7; i++ {
		e := NewEnemy(float64(2000+i*100), 2000)
		e.LastShot = 1e9
		w.enemies = append(w.enemies, e)
	}

	// Blocked spawn at t=6, timer resets to 6
	w.Advance(core.Command{}, 6.0)
	if len(w.enemies) != 7 {
		t.Fatalf("Expected blocked spawn, got %d enemies", len(w.enemies))
	}

	// Clearing the field does not grant an immediate retry
	w.enemies = w.enemies[:0]
	w.Advance(core.Command{}, 7.0)
	if len(w.enemies) != 0 {
		t.Error("Spawn should wait for a full interval after a blocked attempt")
	}

	// A full interval after the blocked attempt: spawn proceeds
	w.Advance(core.Command{}, 12.0)
	if len(w.enemies) != 1 {
		t.Errorf("Expected 1 enemy a full interval later, got %d", len(w.enemies))
	}
}

func TestMusicRotation(t *testing.T) {
	tuning := config.DefaultPlanesConfig()
	tuning.Spawner.Interval = 1e9 // Keep the field empty for this test
	w := NewWorld(tuning, 3, 0)

	events := w.Advance(core.Command{}, tick)
	if n := countEvents(events, core.EventTrackChange); n != 1 {
		t.Fatalf("Expected 1 track change on the first tick, got %d", n)
	}

	var first int
	for _, ev := range events {
		if ev.Kind == core.EventTrackChange {
			first = ev.Track
		}
	}
	if first < 1 || first > len(tuning.Music.TrackSeconds) {
		t.Fatalf("Track %d out of range", first)
	}
	wantNext := tick + tuning.Music.TrackSeconds[first-1]
	if w.nextTrackTime != wantNext {
		t.Errorf("nextTrackTime = %v, expected %v", w.nextTrackTime, wantNext)
	}

	// Landing exactly on the boundary does not rotate yet
	events = w.Advance(core.Command{}, wantNext)
	if hasEvent(events, core.EventTrackChange) {
		t.Error("Track should not rotate exactly at the boundary")
	}

	// Past the boundary: the rotation cycles to the other track
	events = w.Advance(core.Command{}, wantNext+0.001)
	if n := countEvents(events, core.EventTrackChange); n != 1 {
		t.Fatalf("Expected 1 track change past the boundary, got %d", n)
	}
	for _, ev := range events {
		if ev.Kind == core.EventTrackChange && ev.Track == first {
			t.Errorf("Track should cycle away from %d", first)
		}
	}
}

func TestAdvancePanicsOnClockRegression(t *testing.T) {
	w := testWorld(1)
	w.Advance(core.Command{}, 1.0)

	defer func() {
		if recover() == nil {
			t.Error("Advance with a regressing clock should panic")
		}
	}()
	w.Advance(core.Command{}, 0.5)
}

func TestTurnStepsAccumulate(t *testing.T) {
	w := testWorld(1)
	step := config.DefaultPlanesConfig().Physics.TurnStep()

	w.Advance(core.Command{TurnCCW: true}, tick)
	if math.Abs(w.Player.Angle-step) > 1e-12 {
		t.Errorf("Angle = %v, expected %v after one CCW step", w.Player.Angle, step)
	}

	// Opposite turns in one tick cancel out
	w.Advance(core.Command{TurnCCW: true, TurnCW: true}, 2*tick)
	if math.Abs(w.Player.Angle-step) > 1e-12 {
		t.Errorf("Angle = %v, expected unchanged %v", w.Player.Angle, step)
	}

	w.Advance(core.Command{TurnCW: true}, 3*tick)
	if math.Abs(w.Player.Angle) > 1e-12 {
		t.Errorf("Angle = %v, expected back to 0", w.Player.Angle)
	}
}
