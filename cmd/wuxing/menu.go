package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wuxing-arcade/internal/config"
	"github.com/vovakirdan/wuxing-arcade/internal/games/wuxing"
	"github.com/vovakirdan/wuxing-arcade/internal/platform/tui"
	"github.com/vovakirdan/wuxing-arcade/internal/registry"
	"github.com/vovakirdan/wuxing-arcade/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the game with a menu",
	Long: `Start Wuxing Bubbles in interactive menu mode.

Pick a difficulty with Left/Right, start a round with Enter and open the
high scores with Tab. After a round ends, B returns to the menu.

Controls:
  Up/Down/j/k   - Navigate menu
  Left/Right    - Change difficulty
  Enter/Space   - Select
  Tab           - High scores
  Q             - Quit

Examples:
  wuxing menu
  wuxing menu --fps 30
  wuxing menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Preselected difficulty preset")
}

func runMenu(_ *cobra.Command, _ []string) error {
	preset, err := resolveDifficulty(flagDifficulty)
	if err != nil {
		return err
	}
	if err := checkConfig(flagConfig, preset); err != nil {
		return err
	}
	wuxing.SetConfigPath(flagConfig)

	logger, closeLog, err := tuiLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	stderrLog, err := newLogger(os.Stderr, "wuxing")
	if err != nil {
		return err
	}
	store := openStore(stderrLog)
	if store != nil {
		defer store.Close()
	}

	return runMenuLoop(store, preset, logger)
}

// runMenuLoop shows the menu until the player quits, running rounds and
// the scoreboard in between.
func runMenuLoop(store *storage.Store, preset config.DifficultyPreset, logger *log.Logger) error {
	cfg := runtimeConfig()
	title := gameTitle(wuxing.GameID)

	for {
		menuResult, err := tui.RunMenu(store, wuxing.GameID, preset, cfg)
		if err != nil {
			return err
		}

		// Keep size changes and the chosen difficulty
		cfg = menuResult.Config
		preset = menuResult.Preset

		switch {
		case menuResult.Quit:
			return nil

		case menuResult.WantsScoreboard:
			goBack, sbErr := tui.RunScoreboard(store, wuxing.GameID, title, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				return sbErr
			}
			if !goBack {
				return nil
			}

		case menuResult.Play:
			if checkErr := checkConfig(flagConfig, preset); checkErr != nil {
				return checkErr
			}
			wuxing.SetDifficultyPreset(string(preset))

			game, createErr := registry.Create(wuxing.GameID)
			if createErr != nil {
				return fmt.Errorf("creating game: %w", createErr)
			}

			// Fresh seed for each round unless pinned
			if flagSeed == 0 {
				cfg.Seed = time.Now().UnixNano()
			}

			backToMenu, runErr := tui.Run(game, store, cfg, tui.Options{
				Player:    playerName(),
				FixedSeed: flagSeed != 0,
				Logger:    logger,
			})
			if runErr != nil {
				return fmt.Errorf("running game: %w", runErr)
			}
			if !backToMenu {
				return nil
			}

		default:
			return nil
		}
	}
}

// gameTitle returns the registered title for id.
func gameTitle(id string) string {
	for _, g := range registry.List() {
		if g.ID == id {
			return g.Title
		}
	}
	return id
}
