package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wuxing-arcade/internal/games/wuxing"
	"github.com/vovakirdan/wuxing-arcade/internal/platform/tui"
	"github.com/vovakirdan/wuxing-arcade/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start a round of Wuxing Bubbles right away.

Controls:
  Left/Right, A/D, H/L  - Aim
  Space/Up/W/K          - Fire
  Tab/Down/S/J/C        - Swap loaded and held bubble
  P/Esc                 - Pause
  R                     - Restart (after game over)
  B                     - Back to the menu
  Q/Ctrl+C              - Quit

Difficulty options:
  fixed  - Ceiling pushes at the configured interval (default)
  easy   - Slow start, the interval shrinks as you score
  normal - Starts at 30% difficulty
  hard   - Starts at 70% difficulty

Examples:
  wuxing play
  wuxing play --difficulty hard
  wuxing play --seed 42
  wuxing play --config ./my-wuxing.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: fixed, easy, normal, hard")
}

func runPlay(_ *cobra.Command, _ []string) error {
	preset, err := resolveDifficulty(flagDifficulty)
	if err != nil {
		return err
	}
	if err := checkConfig(flagConfig, preset); err != nil {
		return err
	}

	logger, closeLog, err := tuiLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	wuxing.SetConfigPath(flagConfig)
	wuxing.SetDifficultyPreset(string(preset))

	game, err := registry.Create(wuxing.GameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	stderrLog, err := newLogger(os.Stderr, "wuxing")
	if err != nil {
		return err
	}
	store := openStore(stderrLog)
	if store != nil {
		defer store.Close()
	}

	backToMenu, err := tui.Run(game, store, runtimeConfig(), tui.Options{
		Player:    playerName(),
		FixedSeed: flagSeed != 0,
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	if backToMenu {
		return runMenuLoop(store, preset, logger)
	}
	return nil
}
