// wuxing is a terminal bubble shooter built on the five elements.
//
// Usage:
//
//	wuxing list              - List available games
//	wuxing play              - Play a round right away
//	wuxing menu              - Start menu with difficulty picker and scores
//	wuxing serve             - Start SSH server for remote play
//	wuxing scores            - Show high scores and stats
//	wuxing config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.arcade/scores.db)
//	--log-level <level> - Log level: debug, info, warn, error
//	--log-file <path>   - Write logs to a file while the TUI is running
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/wuxing-arcade/internal/games/wuxing"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wuxing",
	Short: "Wuxing Bubbles - a five element bubble shooter for your terminal",
	Long: `Wuxing Bubbles is a bubble shooter where every bubble is one of the
five elements: Wood, Fire, Earth, Metal and Water.

Land a shot next to the element it overcomes (Ke) to clear a whole group,
or next to the element it feeds (Sheng) to convert its neighbours. Keep
the field above the danger line while the ceiling pushes down.

Available commands:
  list     - Show all available games
  play     - Start a round directly
  menu     - Interactive menu with difficulty and scores
  serve    - Start SSH server for remote play
  scores   - View high scores and stats
  config   - Print the default configuration

Examples:
  wuxing play
  wuxing play --difficulty hard
  wuxing menu
  wuxing serve --ssh :2222
  wuxing scores`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file used while a TUI is running")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
