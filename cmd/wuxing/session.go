package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/wuxing-arcade/internal/config"
	"github.com/vovakirdan/wuxing-arcade/internal/core"
	"github.com/vovakirdan/wuxing-arcade/internal/games/wuxing"
	"github.com/vovakirdan/wuxing-arcade/internal/registry"
	"github.com/vovakirdan/wuxing-arcade/internal/storage"
)

// newLogger builds a logger at the --log-level writing to w.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          prefix,
	}), nil
}

// tuiLogger returns the logger used while a full screen program owns the
// terminal. Without --log-file nothing is logged.
func tuiLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return nil, func() {}, nil
	}
	path, err := storage.ExpandPath(flagLogFile)
	if err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger, err := newLogger(f, "wuxing")
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}

// resolveDifficulty parses a --difficulty value and suggests the nearest
// preset name on a typo.
func resolveDifficulty(name string) (config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(name)
	if err == nil {
		return preset, nil
	}

	names := make([]string, 0, len(config.Presets()))
	for _, p := range config.Presets() {
		names = append(names, string(p))
	}
	if s, ok := registry.Closest(strings.ToLower(name), names); ok {
		return "", fmt.Errorf("%w (did you mean %q?)", err, s)
	}
	return "", fmt.Errorf("%w (choose one of %s)", err, strings.Join(names, ", "))
}

// checkConfig loads the config file the game will use and rejects it early
// instead of silently falling back to defaults at reset.
func checkConfig(path string, preset config.DifficultyPreset) error {
	cfg, err := config.LoadWuxing(path)
	if err != nil {
		return err
	}
	config.ApplyWuxingPreset(&cfg, preset)
	if _, err := wuxing.SimConfig(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// runtimeConfig builds the runtime config from global flags and the
// current terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. A failure is logged and play goes
// on without scores.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// playerName is the local account name recorded with scores.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
