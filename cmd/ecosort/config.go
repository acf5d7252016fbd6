package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ecosort/ecosort/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default config YAML",
	Long: `Print the built-in default rules as YAML.

Redirect the output to a file, edit it, and pass it back with --config:

  ecosort config > my-rules.yaml
  ecosort play --config ./my-rules.yaml`,
	Run: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	os.Stdout.Write(config.DefaultYAML())
}
