// shooter is a terminal arcade shooter: dodge descending enemies, return
// fire, and chase a high score.
//
// Usage:
//
//	shooter play              - Play locally in the current terminal
//	shooter scores            - Show the best runs
//	shooter serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.shooter/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
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
	Use:   "shooter",
	Short: "Terminal arcade shooter",
	Long: `A terminal arcade shooter. Move along the bottom of the screen,
shoot down descending enemies, grab power-ups, and survive as the pace
picks up with every thousand points.

Available commands:
  play     - Play in the current terminal
  scores   - View the best runs
  serve    - Start SSH server for remote play

Examples:
  shooter play
  shooter play --difficulty hard
  shooter scores --interactive
  shooter serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.shooter/runs.db", "Path to runs database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
