package planes

import (
	"fmt"
	"math"

	"github.com/arcadeworks/tui-planes/internal/config"
	"github.com/arcadeworks/tui-planes/internal/core"
	"github.com/arcadeworks/tui-planes/internal/registry"
)

// World units per character cell. Terminal cells are roughly twice as tall
// as they are wide, so the vertical scale doubles to keep circles round.
const (
	cellUnitsX = 10
	cellUnitsY = 20
)

// Visual characters for rendering
const (
	BulletChar = '•'
	CloudChar  = '░'
)

// headingArrows maps a heading sector (45° each, counter-clockwise from
// east) to its arrow glyph.
var headingArrows = [8]rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

// Game adapts the dogfight world to the platform's game interface. The world
// is created lazily on the first Advance so that the session clock starts at
// the driver's first tick, not at Reset.
type Game struct {
	cfg    core.RuntimeConfig
	tuning config.PlanesConfig

	configPath string
	preset     config.DifficultyPreset

	world *World
}

// New creates a new dogfight game instance with the embedded default tuning.
func New() *Game {
	return &Game{
		tuning: config.DefaultPlanesConfig(),
		preset: config.DifficultyNormal,
	}
}

// SetConfigPath sets an explicit tuning file to load on the next Reset.
func (g *Game) SetConfigPath(path string) {
	g.configPath = path
}

// SetDifficultyPreset selects the preset applied on the next Reset.
func (g *Game) SetDifficultyPreset(preset config.DifficultyPreset) {
	g.preset = preset
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "planes"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Planes!"
}

// Reset initializes or restarts the game. The world itself is rebuilt on the
// first Advance that follows, when the session start time is known.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg

	tuning, err := config.LoadPlanes(g.configPath)
	if err != nil {
		tuning = config.DefaultPlanesConfig()
	}
	config.ApplyPlanesPreset(&tuning, g.preset)

	g.tuning = tuning
	g.world = nil
}

// Advance runs one simulation tick at the given clock value.
func (g *Game) Advance(cmd core.Command, now float64) core.StepResult {
	if g.world == nil {
		g.world = NewWorld(g.tuning, g.cfg.Seed, now)
	}

	events := g.world.Advance(cmd, now)
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.world.Kills(),
		GameOver: !g.world.Playing(),
	}
}

// Snapshot exposes the underlying world snapshot, or the zero snapshot
// before the first tick.
func (g *Game) Snapshot() Snapshot {
	if g.world == nil {
		return Snapshot{}
	}
	return g.world.Snapshot()
}

// Render draws the world with the camera locked on the player's plane.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.world == nil {
		g.drawSplash(dst)
		return
	}

	snap := g.world.Snapshot()
	cx := dst.Width() / 2
	cy := dst.Height() / 2

	g.drawClouds(dst, snap.Player.X, snap.Player.Y)

	for _, b := range snap.Bullets {
		sx := cx + (b.X-snap.Player.X)/cellUnitsX
		sy := cy + (b.Y-snap.Player.Y)/cellUnitsY
		color := core.ColorBrightYellow
		if !b.PlayerOwned {
			color = core.ColorBrightRed
		}
		dst.SetCell(sx, sy, BulletChar, color)
	}

	for _, e := range snap.Enemies {
		sx := cx + (e.X-snap.Player.X)/cellUnitsX
		sy := cy + (e.Y-snap.Player.Y)/cellUnitsY
		dst.SetCell(sx, sy, headingArrow(e.Angle), core.ColorRed)
	}

	dst.SetCell(cx, cy, headingArrow(snap.Player.Angle), core.ColorBrightYellow)

	speed := math.Hypot(snap.Player.VelX, snap.Player.VelY)
	hud := fmt.Sprintf(" Kills: %d  Speed: %.1f  Hostiles: %d ",
		snap.Kills, speed, len(snap.Enemies))
	dst.DrawTextColored(2, 0, hud, core.ColorWhite)

	if !snap.Playing {
		g.drawCenteredMessage(dst, "SHOT DOWN",
			fmt.Sprintf("Kills: %d  |  Press R to fly again", snap.Kills))
	}
}

// headingArrow returns the arrow glyph for a heading angle in radians,
// measured counter-clockwise from east on the y-up plane.
func headingArrow(angle float64) rune {
	sector := int(math.Round(angle/(math.Pi/4))) % 8
	if sector < 0 {
		sector += 8
	}
	return headingArrows[sector]
}

// drawClouds fills the backdrop with a sparse cloud field. Cloud placement
// hashes the world-space cell coordinates, so clouds stay fixed in the world
// and scroll past as the player flies.
func (g *Game) drawClouds(dst *core.Screen, camX, camY int) {
	for sy := 0; sy < dst.Height(); sy++ {
		for sx := 0; sx < dst.Width(); sx++ {
			wx := camX/cellUnitsX + sx - dst.Width()/2
			wy := camY/cellUnitsY + sy - dst.Height()/2
			if cloudAt(wx, wy) {
				dst.SetCell(sx, sy, CloudChar, core.ColorGray)
			}
		}
	}
}

// cloudAt hashes a world cell coordinate into a sparse cloud mask.
func cloudAt(wx, wy int) bool {
	h := uint64(int64(wx)*2654435761) ^ uint64(int64(wy)*40503)
	h ^= h >> 13
	h *= 0x9e3779b97f4a7c15
	h ^= h >> 31
	return h%41 == 0
}

// drawSplash shows the controls before the first tick runs.
func (g *Game) drawSplash(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-3, "P L A N E S !")
	dst.DrawTextCentered(mid-1, "←/→ turn   ↑ thrust   Space fire")
	dst.DrawTextCentered(mid+1, "Shoot down enemy planes. Don't get hit.")
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

// Register the game with the registry
func init() {
	registry.Register("planes", func() registry.Game {
		return New()
	})
}
