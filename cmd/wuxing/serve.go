package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wuxing-arcade/internal/games/wuxing"
	"github.com/vovakirdan/wuxing-arcade/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeConfig string
	flagServePreset string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Wuxing Bubbles SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with the menu, its own round and
the shared scoreboard. Scores are recorded under the SSH user name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Examples:
  wuxing serve                           # Listen on :23234 with auto-generated key
  wuxing serve --ssh :2222               # Listen on port 2222
  wuxing serve --host-key ./my_host_key  # Use specific host key
  wuxing serve --difficulty normal       # Preselect a difficulty

Users can connect with:
  ssh -t localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to custom game config YAML")
	serveCmd.Flags().StringVar(&flagServePreset, "difficulty", "", "Difficulty preselected in every session")
}

func runServe(_ *cobra.Command, _ []string) error {
	preset, err := resolveDifficulty(flagServePreset)
	if err != nil {
		return err
	}
	if err := checkConfig(flagServeConfig, preset); err != nil {
		return err
	}
	wuxing.SetConfigPath(flagServeConfig)

	logger, err := newLogger(os.Stderr, "wuxing-ssh")
	if err != nil {
		return err
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.GameID = wuxing.GameID
	cfg.Preset = preset
	cfg.TickRate = flagFPS
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.Logger = logger

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	logger.Info("press Ctrl+C to stop", "connect", fmt.Sprintf("ssh -t localhost -p %s", portOf(cfg.Address)))

	return server.ListenAndServe()
}

// portOf returns the port part of a host:port address.
func portOf(addr string) string {
	for i := len(addr) - 1; i >= 0; i-- {
		if addr[i] == ':' {
			return addr[i+1:]
		}
	}
	return addr
}
