package main

import (
	"fmt"
	"orbitdemo/internal/config"
	"os"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the demo would run with, after the file search
and command line overrides, as YAML.

Examples:
  orbitdemo config
  orbitdemo config --no-physics > ~/.orbitdemo/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if source == "" {
		source = "built-in defaults"
	}
	fmt.Fprintf(os.Stderr, "# source: %s\n", source)
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
