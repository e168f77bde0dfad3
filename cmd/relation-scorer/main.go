// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the relation-scorer CLI.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/relation-scorer/internal/config"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the relation-scorer CLI.
var rootCmd = &cobra.Command{
	Use:   "relation-scorer",
	Short: "Ensemble scoring for entity relationships",
	Long: `relation-scorer computes an ensemble of numeric scores describing the
strength, sentiment polarity, and temporal trend of a relationship between
two named entities, from a bundle of mention records plus entity
prominence metadata.

Scoring formulas are driven by relation-scorer.yaml (or the file given
with --config); anything unset falls back to the built-in defaults.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, _ := cmd.Flags().GetString("log-level")
		initLogging(level)

		cfgFile, _ := cmd.Flags().GetString("config")
		if cfgFile != "" {
			config.SetConfigFile(cfgFile)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default: ./relation-scorer.yaml or ~/.config/relation-scorer/relation-scorer.yaml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn, or error")
}

// initLogging installs a stderr text handler at the requested level so
// engine diagnostics stay out of the JSON written to stdout.
func initLogging(level string) {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "info":
		l = slog.LevelInfo
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelWarn
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})
	slog.SetDefault(slog.New(handler))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
