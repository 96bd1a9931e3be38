package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcadeworks/tui-planes/internal/config"
	"github.com/arcadeworks/tui-planes/internal/core"
	"github.com/arcadeworks/tui-planes/internal/games/planes"
	"github.com/arcadeworks/tui-planes/internal/platform/audio"
	"github.com/arcadeworks/tui-planes/internal/platform/tui"
	"github.com/arcadeworks/tui-planes/internal/registry"
	"github.com/arcadeworks/tui-planes/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Fly a sortie",
	Long: `Take off and fight the enemy planes chasing you.

Controls:
  Left/Right, A/D  - Turn
  Up, W            - Thrust
  Space            - Fire
  M                - Toggle sound
  R                - Restart (after going down)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower enemies, longer spawn and fire intervals
  normal - Classic tuning
  hard   - Faster enemies, shorter spawn and fire intervals

Examples:
  planes play
  planes play --difficulty hard
  planes play --config ./my-tuning.yaml
  planes play --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start without sound")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Create game instance
	game, err := registry.Create("planes")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Apply tuning options before the first Reset
	if pg, ok := game.(*planes.Game); ok {
		pg.SetConfigPath(flagConfig)
		pg.SetDifficultyPreset(config.DifficultyPreset(flagDifficulty))
	}

	// Open sortie storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open sorties database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Sound: failure to open the speaker falls back to silence
	var sound *audio.SoundManager
	if !flagMute {
		sound = audio.NewSoundManager()
		if soundErr := sound.Initialize(); soundErr != nil {
			sound = nil
		}
	}

	// Run the game
	runErr := tui.Run(game, store, sound, cfg)

	if sound != nil {
		sound.Cleanup()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
