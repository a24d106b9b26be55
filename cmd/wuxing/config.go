package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wuxing-arcade/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML.

Save it as ~/.arcade/configs/wuxing.yaml or ./configs/wuxing.yaml and edit
the values, or point --config at a copy.

Examples:
  wuxing config > ~/.arcade/configs/wuxing.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultWuxingYAML())
		return err
	},
}
