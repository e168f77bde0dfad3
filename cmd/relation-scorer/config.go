// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/relation-scorer/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the resolved scoring configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved configuration as YAML",
	Long: `Show prints the scoring configuration the engines would run with:
the config file (if any) merged over environment variables and the
built-in defaults.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Default().Scoring()
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("marshaling config: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
