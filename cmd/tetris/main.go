// tetris is a terminal falling-block puzzle game.
//
// Usage:
//
//	tetris list              - List available game variants
//	tetris play [variant]    - Play a game variant
//	tetris menu              - Start menu to pick variants interactively
//	tetris serve             - Start SSH server for remote play
//	tetris scores <variant>  - Show high scores for a variant
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.tetris/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import game package to register variants
	_ "github.com/vovakirdan/tui-tetris/internal/tetris"
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
	Use:   "tetris",
	Short: "Tetris - Falling blocks in your terminal",
	Long: `A terminal falling-block puzzle game with marathon and
fixed-gravity modes, played directly in your terminal or over SSH.

Available commands:
  list     - Show all game variants
  play     - Play a variant directly
  menu     - Interactive picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  tetris play
  tetris play --level 5
  tetris menu
  tetris serve --ssh :2222
  tetris scores tetris`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetris/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
