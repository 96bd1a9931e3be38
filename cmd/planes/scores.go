package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcadeworks/tui-planes/internal/platform/tui"
	"github.com/arcadeworks/tui-planes/internal/storage"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show sortie records",
	Long: `Display the top 10 sorties: kills and flight time.

Examples:
  planes scores
  planes scores -i    # Interactive scoreboard`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse records in an interactive table")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening sorties database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, "planes", width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	sorties, err := store.TopSorties("planes", 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sorties: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Sortie Records - Planes!")
	fmt.Println()

	if len(sorties) == 0 {
		fmt.Println("No sorties recorded yet.")
		fmt.Println()
		fmt.Println("Run 'planes play' to fly the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "Rank", "Kills", "Flight", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "----", "-----", "------", "----")

	for i, entry := range sorties {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		flight := fmt.Sprintf("%d:%02d", entry.DurationSecs/60, entry.DurationSecs%60)
		fmt.Printf("  %-4d  %-8d  %-8s  %s\n", i+1, entry.Kills, flight, dateStr)
	}

	fmt.Println()
	if best, err := store.BestKills("planes"); err == nil {
		fmt.Printf("Best: %d kills\n", best)
	}
}
