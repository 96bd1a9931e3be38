package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arcadeworks/tui-planes/internal/core"
	"github.com/arcadeworks/tui-planes/internal/platform/audio"
	"github.com/arcadeworks/tui-planes/internal/registry"
	"github.com/arcadeworks/tui-planes/internal/storage"
)

// Model is the Bubble Tea model for flying a sortie. It owns the simulation
// clock: ticks sample the wall clock against a fixed origin, so a delayed
// tick loses no simulated time.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	sound      *audio.SoundManager
	config     core.RuntimeConfig
	keys       *KeyTracker
	gameState  core.GameState
	clockStart time.Time // Origin of the simulation clock

	sortieStart float64 // Simulation clock at the start of the current flight
	quitting    bool
	restarting  bool
	scoreSaved  bool // Whether the sortie has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, sound *audio.SoundManager, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		sound:      sound,
		config:     cfg,
		keys:       NewKeyTracker(),
		clockStart: time.Now(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	// Initialize the game
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "m":
		if m.sound != nil {
			m.sound.ToggleMute()
		}
		return m, nil
	case "r":
		if m.gameState.GameOver {
			m.restarting = true
		}
		return m, nil
	}

	m.keys.Press(msg.String(), time.Now())
	return m, nil
}

// handleResize processes window resize events. The world is camera-relative,
// so resizing only changes the viewport; the flight continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	now := time.Since(m.clockStart).Seconds()

	// Check for restart
	if m.restarting && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.sortieStart = now
		m.scoreSaved = false
		m.restarting = false
		m.keys.Clear()
	}

	// Run game simulation
	result := m.game.Advance(m.keys.Command(time.Now()), now)
	m.gameState = result.State

	m.dispatchEvents(result.Events)

	// Save the sortie on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		if m.store != nil && m.gameState.Score > 0 {
			duration := int(now - m.sortieStart)
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveSortie(m.game.ID(), m.gameState.Score, duration)
		}
		m.scoreSaved = true
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// dispatchEvents maps simulation events to audio cues. Events are
// fire-and-forget; a nil sound manager drops them.
func (m Model) dispatchEvents(events []core.Event) {
	if m.sound == nil {
		return
	}

	for _, ev := range events {
		switch ev.Kind {
		case core.EventPlayerFired:
			m.sound.PlayShot()
		case core.EventEnemyFired:
			m.sound.PlayEnemyShot()
		case core.EventEnemyDown:
			m.sound.PlayExplosion()
		case core.EventPlayerDown:
			m.sound.PlayCrash()
		case core.EventTrackChange:
			m.sound.StartTrack(ev.Track)
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	// Create screenshots directory
	dir := filepath.Join(os.Getenv("HOME"), ".planes", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	// Save screenshot
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	// Convert screen to string
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model. A nil sound
// manager runs the game silently.
func Run(game registry.Game, store *storage.Store, sound *audio.SoundManager, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, sound, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
