// planes is a terminal dogfight arcade: fly a plane, shoot down the enemies
// chasing you, survive as long as you can.
//
// Usage:
//
//	planes play              - Fly a sortie
//	planes scores            - Show sortie records
//	planes serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.planes/sorties.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/arcadeworks/tui-planes/internal/games/planes"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "planes",
	Short: "Planes! - Terminal dogfight arcade",
	Long: `Planes! is a terminal dogfight: steer your plane, outfly gravity,
and shoot down the enemy planes converging on you from every direction.

Available commands:
  play     - Fly a sortie
  scores   - View sortie records
  serve    - Start SSH server for remote play

Examples:
  planes play
  planes play --difficulty hard
  planes scores -i
  planes serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.planes/sorties.db", "Path to sorties database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
